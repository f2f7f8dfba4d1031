package model

import "time"

// Answer 用户在一次 Attempt 中对单题的作答记录。
// is_correct 为答题时刻按所选选项冗余写入，读取侧不再重新校验。
// swagger:model Answer
type Answer struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"size:36;index;not null" json:"userId"`
	AttemptID  uint      `gorm:"index;type:bigint unsigned;not null" json:"attemptId"`
	QuestionID uint      `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	ChoiceID   uint      `gorm:"type:bigint unsigned;not null" json:"choiceId"`
	IsCorrect  bool      `gorm:"default:false" json:"isCorrect"`
	AnsweredAt time.Time `gorm:"autoCreateTime" json:"answeredAt"`
}

func (Answer) TableName() string {
	return "answers"
}
