package link

import "gorm.io/gorm"

type HandlerDBLink struct {
	DB *gorm.DB
}

func NewHandlerDBLink(db *gorm.DB) *HandlerDBLink {
	return &HandlerDBLink{DB: db}
}
