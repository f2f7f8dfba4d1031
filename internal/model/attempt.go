package model

import "time"

// Attempt 一次答题会话，correct_count 和 finished_at 为空表示进行中。
// 不做软删除：保留清理必须真正释放存储。
// swagger:model Attempt
type Attempt struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string        `gorm:"size:36;index;not null" json:"userId"`
	Level          QuestionLevel `gorm:"size:20;index;not null" json:"level"`
	TotalQuestions int           `gorm:"not null" json:"totalQuestions"`
	CorrectCount   *int          `json:"correctCount,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	FinishedAt     *time.Time    `json:"finishedAt,omitempty"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// Finished 以 finished_at 是否落库为准，而不是 correct_count
func (a *Attempt) Finished() bool {
	return a.FinishedAt != nil
}
