package channel

import "gorm.io/gorm"

type HandlerDBChannel struct {
	DB *gorm.DB
}

func NewHandlerDBChannel(db *gorm.DB) *HandlerDBChannel {
	return &HandlerDBChannel{DB: db}
}
