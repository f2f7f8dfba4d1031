package service

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/pkg/database"
	"quiz_prep_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个测试一个独立的内存 SQLite，单连接串行化写入
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedQuestion 建一道题，correctIdx 指定正确选项下标，返回完整题目
func seedQuestion(t *testing.T, db *gorm.DB, level model.QuestionLevel, prompt string, correctIdx int, labels ...string) *model.Question {
	t.Helper()

	choices := make([]model.Choice, len(labels))
	for i, label := range labels {
		choices[i] = model.Choice{Label: label, IsCorrect: i == correctIdx}
	}
	q := &model.Question{
		Level:       level,
		Category:    "general",
		Prompt:      prompt,
		Explanation: "because " + prompt,
		Choices:     choices,
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}
