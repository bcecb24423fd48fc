package test

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearDatabase(context.Background())

		reqBody := model.RegisterRequest{
			Name:     "Ayu Lestari",
			Email:    "ayu@example.com",
			Password: "Password123!",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		dataMap, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Contains(t, dataMap, "token")

		userMap, ok := dataMap["user"].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, "ayu@example.com", userMap["email"])
		assert.Equal(t, "citizen", userMap["role"])
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		clearDatabase(context.Background())
		u := createTestUser(t, "dup")

		reqBody := model.RegisterRequest{
			Name:     "Someone Else",
			Email:    u.Email,
			Password: "Password123!",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusConflict, rr.Code) {
			printBody(t, rr)
		}
	})

	t.Run("Invalid Body", func(t *testing.T) {
		clearDatabase(context.Background())

		reqBody := model.RegisterRequest{
			Name:     "No",
			Email:    "not-an-email",
			Password: "short",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearDatabase(context.Background())
		u := createTestUser(t, "loginsuccess")

		reqBody := model.LoginRequest{
			Email:    u.Email,
			Password: "Password123!",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		dataMap, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.Contains(t, dataMap, "token")
	})

	t.Run("Wrong Password", func(t *testing.T) {
		clearDatabase(context.Background())
		u := createTestUser(t, "loginwrong")

		reqBody := model.LoginRequest{
			Email:    u.Email,
			Password: "WrongPassword!",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		clearDatabase(context.Background())

		reqBody := model.LoginRequest{
			Email:    "nobody@example.com",
			Password: "Password123!",
		}
		body, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		rr := executeRequest(req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	clearDatabase(context.Background())

	req, _ := http.NewRequest("GET", "/api/reports", nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req, _ = http.NewRequest("GET", "/api/reports", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr = executeRequest(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	clearDatabase(context.Background())
	citizen := createTestUser(t, "citizenrole")
	token := tokenFor(t, citizen)

	req, _ := http.NewRequest("GET", "/api/admin/reports", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rr := executeRequest(req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
