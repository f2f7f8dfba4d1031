package model

// QuestionLevel 题目难度枚举
type QuestionLevel string

const (
	LevelBeginner     QuestionLevel = "beginner"
	LevelIntermediate QuestionLevel = "intermediate"
	LevelAdvanced     QuestionLevel = "advanced"
)

// LevelOrder 固定的难度顺序，同时用作合法难度白名单
var LevelOrder = []QuestionLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

func (l QuestionLevel) Valid() bool {
	for _, known := range LevelOrder {
		if l == known {
			return true
		}
	}
	return false
}

func ParseQuestionLevel(s string) (QuestionLevel, bool) {
	l := QuestionLevel(s)
	return l, l.Valid()
}
