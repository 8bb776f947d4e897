package foodapi

import (
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
	"github.com/aaravmahajanofficial/food-cart/internal/models"
	"github.com/tidwall/gjson"
)

// The PHP API encodes numbers inconsistently ("12" and 12 both occur).
// gjson's Int() accepts both forms.

func decodeFoods(body []byte) ([]models.Food, error) {
	if !gjson.ValidBytes(body) {
		return nil, appErrors.ServerError("Response body is null")
	}

	root := gjson.ParseBytes(body)
	if root.Get("success").Int() != 1 {
		return nil, appErrors.ServerError("API Error: request rejected")
	}

	list := root.Get("yemekler")
	if !list.IsArray() || len(list.Array()) == 0 {
		return nil, appErrors.ServerError("No foods found")
	}

	foods := make([]models.Food, 0, len(list.Array()))
	for _, item := range list.Array() {
		foods = append(foods, models.Food{
			ID:    int(item.Get("yemek_id").Int()),
			Name:  item.Get("yemek_adi").String(),
			Image: item.Get("yemek_resim_adi").String(),
			Price: int(item.Get("yemek_fiyat").Int()),
		})
	}

	return foods, nil
}

// decodeCart returns nil whenever the body does not describe a non-empty cart.
func decodeCart(body []byte) []models.CartEntry {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil
	}

	root := gjson.ParseBytes(body)
	if root.Get("success").Int() != 1 {
		return nil
	}

	list := root.Get("sepet_yemekler")
	if !list.IsArray() {
		return nil
	}

	items := list.Array()
	entries := make([]models.CartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, models.CartEntry{
			ID:       int(item.Get("sepet_yemek_id").Int()),
			Name:     item.Get("yemek_adi").String(),
			Image:    item.Get("yemek_resim_adi").String(),
			Price:    int(item.Get("yemek_fiyat").Int()),
			Quantity: int(item.Get("yemek_siparis_adet").Int()),
			Username: item.Get("kullanici_adi").String(),
		})
	}

	return entries
}

// decodeCrud reads the {success, message} envelope; ok is false when the body carries neither.
func decodeCrud(body []byte) (success int64, message string, ok bool) {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return 0, "", false
	}

	root := gjson.ParseBytes(body)
	successField := root.Get("success")
	if !successField.Exists() {
		return 0, "", false
	}

	return successField.Int(), root.Get("message").String(), true
}
