package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"quiz_prep_backend/internal/repository"
	"quiz_prep_backend/internal/service"
	"quiz_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// asUser 测试用中间件：跳过令牌校验直接注入用户
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", &util.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		})
		c.Next()
	}
}

func newQuizRouter(db *gorm.DB, userID string) *gin.Engine {
	attemptRepo := repository.NewAttemptRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	retention := service.NewRetentionPolicy(2)

	attempts := service.NewAttemptService(attemptRepo, answerRepo, retention)
	history := service.NewHistoryService(attemptRepo, answerRepo, questionRepo, retention)

	attemptCtl := NewAttemptController(attempts, attempts)
	historyCtl := NewHistoryController(history)

	r := gin.New()
	auth := r.Group("/api", asUser(userID))
	auth.POST("/attempts", attemptCtl.CreateAttempt)
	auth.POST("/attempts/:id/answers", attemptCtl.RecordAnswer)
	auth.POST("/attempts/:id/finish", attemptCtl.FinishAttempt)
	auth.GET("/history/:id", historyCtl.GetHistoryDetail)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createAttempt(t *testing.T, r *gin.Engine) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/attempts", gin.H{"level": "beginner", "totalQuestions": 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("create attempt status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.ID == 0 {
		t.Fatal("no attempt id returned")
	}
	return resp.Data.ID
}

func TestCreateAttemptEndpoint(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")
	createAttempt(t, r)
}

func TestCreateAttemptEndpointRejectsBadLevel(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/attempts", gin.H{"level": "legendary", "totalQuestions": 3})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAttemptIDValidation(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")

	// 导航参数不是数字：进持久层之前就要拒绝
	for _, path := range []string{
		"/api/attempts/abc/finish",
		"/api/attempts/-1/answers",
	} {
		w := doJSON(t, r, http.MethodPost, path, gin.H{"correctCount": 1, "questionId": 1, "choiceId": 1})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", path, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/history/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("history status = %d, want 400", w.Code)
	}
}

func TestFinishEndpointLifecycle(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")
	id := createAttempt(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/attempts/"+strconv.Itoa(int(id))+"/answers",
		gin.H{"questionId": 1, "choiceId": 2, "isCorrect": true})
	if w.Code != http.StatusCreated {
		t.Fatalf("answer status = %d, body %s", w.Code, w.Body.String())
	}

	finishPath := "/api/attempts/" + strconv.Itoa(int(id)) + "/finish"
	w = doJSON(t, r, http.MethodPost, finishPath, gin.H{"correctCount": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("finish status = %d, body %s", w.Code, w.Body.String())
	}

	// 重复定稿被拒
	w = doJSON(t, r, http.MethodPost, finishPath, gin.H{"correctCount": 3})
	if w.Code != http.StatusConflict {
		t.Fatalf("second finish status = %d, want 409", w.Code)
	}
}

func TestFinishEndpointNotFound(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")

	w := doJSON(t, r, http.MethodPost, "/api/attempts/424242/finish", gin.H{"correctCount": 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHistoryDetailEndpointNotFound(t *testing.T) {
	r := newQuizRouter(newTestDB(t), "user-1")

	w := doJSON(t, r, http.MethodGet, "/api/history/424242", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
