// internal/model/status.go
package model

import "time"

// StatusCheck は疎通確認用のレコード (進捗ドメインとは無関係)
type StatusCheck struct {
	ID         string    `gorm:"size:36;primaryKey" json:"id" bson:"id"`
	ClientName string    `gorm:"not null" json:"client_name" bson:"client_name"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp" bson:"timestamp"`
}

func (StatusCheck) TableName() string {
	return "status_checks"
}

// CreateStatusCheckRequest はステータス作成リクエストのDTO
type CreateStatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required"`
}
