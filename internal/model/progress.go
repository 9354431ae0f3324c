// internal/model/progress.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DayCount はカレンダーの日数 (Rose Day 〜 Valentine's Day)
const DayCount = 8

// DayCatalog は日付名の固定カタログ。インデックス = day_number - 1
var DayCatalog = [DayCount]string{
	"Rose Day",
	"Propose Day",
	"Chocolate Day",
	"Teddy Day",
	"Promise Day",
	"Hug Day",
	"Kiss Day",
	"Valentine's Day",
}

// DayProgress は1日分の進捗を表します
type DayProgress struct {
	DayNumber      int        `json:"day_number" bson:"day_number"`
	DayName        string     `json:"day_name" bson:"day_name"`
	IsUnlocked     bool       `json:"is_unlocked" bson:"is_unlocked"`
	IsCompleted    bool       `json:"is_completed" bson:"is_completed"`
	CompletionTime *time.Time `json:"completion_time" bson:"completion_time"` // 完了するまでnil
}

// Days は8日分の進捗。RDBではJSONカラムとしてインラインで保存する
type Days []DayProgress

// Value は driver.Valuer の実装 (GORM書き込み用)
func (d Days) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan は sql.Scanner の実装 (GORM読み込み用)
func (d *Days) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("model.Days: unsupported scan type %T", src)
	}
}

// UserProgress はシステム全体で唯一の進捗ドキュメントです
type UserProgress struct {
	ID           uint      `gorm:"primaryKey" json:"-" bson:"-"`
	SingletonKey string    `gorm:"size:64;not null;uniqueIndex" json:"-" bson:"-"` // 2件目の作成を一意制約で防ぐ
	UserID       string    `gorm:"size:36;not null" json:"user_id" bson:"user_id"`
	Days         Days      `gorm:"type:text;not null" json:"days" bson:"days"`
	ReplayMode   bool      `gorm:"not null;default:false" json:"replay_mode" bson:"replay_mode"`
	AllCompleted bool      `gorm:"not null;default:false" json:"all_completed" bson:"all_completed"`
	Version      int64     `gorm:"not null;default:1" json:"version" bson:"version"` // 楽観ロック用
	CreatedAt    time.Time `gorm:"autoCreateTime:false;not null" json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false;not null" json:"updated_at" bson:"updated_at"`
}

func (UserProgress) TableName() string {
	return "valentine_progress"
}

// NewUserProgress は初期状態の進捗を生成します (Day1のみアンロック)
func NewUserProgress(userID string, now time.Time) *UserProgress {
	days := make(Days, DayCount)
	for i, name := range DayCatalog {
		days[i] = DayProgress{
			DayNumber:  i + 1,
			DayName:    name,
			IsUnlocked: i == 0,
		}
	}
	return &UserProgress{
		UserID:    userID,
		Days:      days,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidDayNumber は day_number がカタログの範囲内かを判定します
func ValidDayNumber(dayNumber int) bool {
	return dayNumber >= 1 && dayNumber <= DayCount
}

// CompleteDay は指定日を完了にし、翌日をアンロックします。
// 全日完了した場合はリプレイモードに移行し、全日をアンロックします。
// 完了済みの日を再度完了した場合は completion_time のみ更新されます。
func (p *UserProgress) CompleteDay(dayNumber int, now time.Time) error {
	idx := dayNumber - 1
	if idx < 0 || idx >= len(p.Days) {
		return ErrInvalidInput
	}

	completedAt := now
	p.Days[idx].IsCompleted = true
	p.Days[idx].CompletionTime = &completedAt

	if idx+1 < len(p.Days) {
		p.Days[idx+1].IsUnlocked = true
	}

	if p.everyDayCompleted() {
		p.AllCompleted = true
		p.ReplayMode = true
		for i := range p.Days {
			p.Days[i].IsUnlocked = true
		}
	}

	p.UpdatedAt = now
	return nil
}

// CompletedCount は完了済みの日数を返します
func (p *UserProgress) CompletedCount() int {
	n := 0
	for _, d := range p.Days {
		if d.IsCompleted {
			n++
		}
	}
	return n
}

func (p *UserProgress) everyDayCompleted() bool {
	return len(p.Days) > 0 && p.CompletedCount() == len(p.Days)
}

// CompleteDayRequest は日付完了リクエストのDTO
type CompleteDayRequest struct {
	DayNumber *int `json:"day_number" validate:"required"`
}

// MessageResponse はメッセージのみのレスポンス
type MessageResponse struct {
	Message string `json:"message"`
}
