package controller

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sort"
	"time"

	"literacy_dapat_backend/internal/model"
	"literacy_dapat_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(router *gin.Engine, path string, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// In-memory repositories backing the HTTP tests. They mirror the gorm
// implementations closely enough to exercise the full controller paths.

type memUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *memUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) UpdateProfile(id uint, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.FullName = fields["full_name"].(string)
	user.Bio = fields["bio"].(string)
	user.AvatarURL = fields["avatar_url"].(string)
	user.PhoneNumber = fields["phone_number"].(string)
	user.Skills = fields["skills"].(string)
	user.Location = fields["location"].(string)
	return nil
}

func (r *memUserRepo) UpdateAvatarURL(id uint, avatarURL string) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.AvatarURL = avatarURL
	return nil
}

type memAssessmentRepo struct {
	assessments map[uint]*model.Assessment
	nextID      uint
}

func newMemAssessmentRepo() *memAssessmentRepo {
	return &memAssessmentRepo{assessments: make(map[uint]*model.Assessment), nextID: 1}
}

func (r *memAssessmentRepo) Create(a *model.Assessment) error {
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	r.nextID++
	copied := *a
	r.assessments[a.ID] = &copied
	return nil
}

func (r *memAssessmentRepo) FindAll() ([]model.Assessment, error) {
	out := make([]model.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memAssessmentRepo) FindByID(id uint) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memAssessmentRepo) DeleteByIDs(ids []uint) error {
	for _, id := range ids {
		delete(r.assessments, id)
	}
	return nil
}

func (r *memAssessmentRepo) UpdateStatus(id uint, status string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Status = status
	copied := *a
	return &copied, nil
}

func (r *memAssessmentRepo) UpdateLevel(id uint, level string) (*model.Assessment, error) {
	a, ok := r.assessments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	a.Level = level
	copied := *a
	return &copied, nil
}
