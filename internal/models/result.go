package models

import (
	appErrors "github.com/aaravmahajanofficial/food-cart/internal/errors"
)

// Result is the Loading / Success / Error envelope returned by every cart and favorites operation.
type Result[T any] struct {
	State   ResultState
	Data    T
	Message string
	Err     error
}

func Loading[T any]() Result[T] {
	return Result[T]{State: ResultLoading}
}

func Success[T any](data T) Result[T] {
	return Result[T]{State: ResultSuccess, Data: data}
}

// Failure wraps err. A nil err still yields an Error result with a generic message.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = appErrors.InternalError("unknown error")
	}
	return Result[T]{State: ResultError, Message: err.Error(), Err: err}
}

// FromError converts an (data, err) pair into a Result.
func FromError[T any](data T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(data)
}

func (r Result[T]) IsLoading() bool { return r.State == ResultLoading }
func (r Result[T]) IsSuccess() bool { return r.State == ResultSuccess }
func (r Result[T]) IsError() bool   { return r.State == ResultError }

// Code is the AppError code behind an Error result, INTERNAL_ERROR for foreign errors,
// and empty for any other state.
func (r Result[T]) Code() string {
	if !r.IsError() {
		return ""
	}
	if appErr, ok := appErrors.IsAppError(r.Err); ok {
		return appErr.Code
	}
	return appErrors.ErrCodeInternal
}

// Unwrap returns the payload and, for Error results, the underlying error.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsError() {
		var zero T
		return zero, r.Err
	}
	return r.Data, nil
}
