package content

import "gorm.io/gorm"

type HandlerDBContent struct {
	DB *gorm.DB
}

func NewHandlerDBContent(db *gorm.DB) *HandlerDBContent {
	return &HandlerDBContent{DB: db}
}
