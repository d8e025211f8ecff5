package service

import (
	"crypto/rand"
	"errors"
	"net/url"
	"time"

	"moneybrief/internal/model"
	"moneybrief/internal/survey"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidShareToken = errors.New("invalid or expired share link")

// ShareService signs answer sets into links that reopen a result
type ShareService struct {
	secret    []byte
	ttl       time.Duration
	baseURL   string
	questions []model.Question
	now       func() time.Time
}

// NewShareService creates a share service. An empty secret is replaced by a
// random one, so links then only resolve until the process restarts.
func NewShareService(secret string, ttl time.Duration, baseURL string) *ShareService {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}
	return &ShareService{
		secret:    key,
		ttl:       ttl,
		baseURL:   baseURL,
		questions: survey.Questions(),
		now:       time.Now,
	}
}

// Create signs answers into a share link
func (s *ShareService) Create(answers model.Answers) (*model.ShareLink, error) {
	if err := survey.Validate(s.questions, answers); err != nil {
		return nil, err
	}
	now := s.now()
	claims := &model.ShareClaims{
		Answers: survey.Prune(s.questions, answers),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &model.ShareLink{
		Token: tokenString,
		URL:   s.baseURL + "/?share=" + url.QueryEscape(tokenString),
	}, nil
}

// Resolve verifies a share token and returns its answers
func (s *ShareService) Resolve(tokenString string) (model.Answers, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ShareClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidShareToken
	}

	claims, ok := token.Claims.(*model.ShareClaims)
	if !ok || !token.Valid || len(claims.Answers) == 0 {
		return nil, ErrInvalidShareToken
	}

	return claims.Answers, nil
}
