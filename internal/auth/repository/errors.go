package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrAlreadyExists  = errors.New("record already exists")
)
