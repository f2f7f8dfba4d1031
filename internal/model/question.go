package model

// swagger:model Question
type Question struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Level       QuestionLevel `gorm:"size:20;index;not null" json:"level"`
	Category    string        `gorm:"size:100" json:"category"`
	Prompt      string        `gorm:"type:text;not null" json:"prompt"`
	Explanation string        `gorm:"type:text" json:"explanation"`
	Choices     []Choice      `gorm:"foreignKey:QuestionID" json:"choices"`
}

func (Question) TableName() string {
	return "questions"
}

// CorrectChoice 返回被标记为正确答案的选项，题库约定每题恰好一个
func (q *Question) CorrectChoice() *Choice {
	for i := range q.Choices {
		if q.Choices[i].IsCorrect {
			return &q.Choices[i]
		}
	}
	return nil
}

// ChoiceByID 在题目自身的选项中按 ID 查找
func (q *Question) ChoiceByID(choiceID uint) *Choice {
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			return &q.Choices[i]
		}
	}
	return nil
}

// swagger:model Choice
type Choice struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint   `gorm:"index;type:bigint unsigned;not null" json:"questionId"`
	Label      string `gorm:"type:text;not null" json:"label"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Choice) TableName() string {
	return "choices"
}
