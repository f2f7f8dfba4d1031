package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"quiz_prep_backend/internal/model"
	"quiz_prep_backend/internal/util"
	"quiz_prep_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", name)
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

func TestFindByLevelOrdersQuestionsAndChoices(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	for _, prompt := range []string{"q-one", "q-two"} {
		q := &model.Question{
			Level:  model.LevelBeginner,
			Prompt: prompt,
			Choices: []model.Choice{
				{Label: prompt + "-a", IsCorrect: true},
				{Label: prompt + "-b"},
				{Label: prompt + "-c"},
			},
		}
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	// 其他难度的题不能混进来
	other := &model.Question{Level: model.LevelAdvanced, Prompt: "q-adv", Choices: []model.Choice{{Label: "x", IsCorrect: true}}}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	questions, err := repo.FindByLevel(model.LevelBeginner)
	if err != nil {
		t.Fatalf("FindByLevel: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	for i := 1; i < len(questions); i++ {
		if questions[i-1].ID > questions[i].ID {
			t.Fatal("questions not ordered by id asc")
		}
	}
	for _, q := range questions {
		if len(q.Choices) != 3 {
			t.Fatalf("question %d has %d choices, want 3", q.ID, len(q.Choices))
		}
		for i := 1; i < len(q.Choices); i++ {
			if q.Choices[i-1].ID > q.Choices[i].ID {
				t.Fatal("choices not ordered by id asc")
			}
		}
	}
}

func TestUpdateReplacesChoices(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	q := &model.Question{
		Level:  model.LevelBeginner,
		Prompt: "before",
		Choices: []model.Choice{
			{Label: "old-a", IsCorrect: true},
			{Label: "old-b"},
		},
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated := &model.Question{
		ID:     q.ID,
		Level:  model.LevelIntermediate,
		Prompt: "after",
		Choices: []model.Choice{
			{Label: "new-a"},
			{Label: "new-b", IsCorrect: true},
			{Label: "new-c"},
		},
	}
	if err := repo.Update(updated); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded, err := repo.FindByID(q.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded.Prompt != "after" || reloaded.Level != model.LevelIntermediate {
		t.Fatalf("fields not updated: %+v", reloaded)
	}
	if len(reloaded.Choices) != 3 {
		t.Fatalf("got %d choices, want 3", len(reloaded.Choices))
	}
	for _, choice := range reloaded.Choices {
		if strings.HasPrefix(choice.Label, "old-") {
			t.Fatalf("stale choice survived: %+v", choice)
		}
	}

	var orphans int64
	db.Model(&model.Choice{}).Where("question_id = ?", q.ID).Count(&orphans)
	if orphans != 3 {
		t.Fatalf("choice rows = %d, want 3 (no leftovers)", orphans)
	}
}

func TestDeleteRemovesChoicesFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	q := &model.Question{
		Level:   model.LevelBeginner,
		Prompt:  "doomed",
		Choices: []model.Choice{{Label: "a", IsCorrect: true}, {Label: "b"}},
	}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := repo.Delete(q.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.FindByID(q.ID); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
	var count int64
	db.Model(&model.Choice{}).Where("question_id = ?", q.ID).Count(&count)
	if count != 0 {
		t.Fatalf("orphan choices = %d, want 0", count)
	}
}

func TestFindByIDsBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	var ids []uint
	for _, prompt := range []string{"q-one", "q-two", "q-three"} {
		q := &model.Question{Level: model.LevelBeginner, Prompt: prompt, Choices: []model.Choice{{Label: "a", IsCorrect: true}}}
		if err := db.Create(q).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
		ids = append(ids, q.ID)
	}

	questions, err := repo.FindByIDs([]uint{ids[2], ids[0]})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	if questions[0].ID != ids[0] || questions[1].ID != ids[2] {
		t.Fatal("batch result not ordered by id asc")
	}

	empty, err := repo.FindByIDs(nil)
	if err != nil || empty != nil {
		t.Fatalf("FindByIDs(nil) = (%v, %v), want (nil, nil)", empty, err)
	}
}
