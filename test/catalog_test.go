package test

import (
	"CivicReportAPI/internal/helper"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetCategories(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "catalog")
	token := tokenFor(t, citizen)

	t.Run("All", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/categories", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		categories, ok := resp.Data.([]interface{})
		assert.True(t, ok)
		assert.Len(t, categories, 2)
	})

	t.Run("Filtered By Type", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/categories?type=emergency", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		categories, ok := resp.Data.([]interface{})
		assert.True(t, ok)
		assert.Len(t, categories, 1)

		first, ok := categories[0].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, fixture.EmergencyCategory.Name, first["name"])
		assert.Equal(t, "emergency", first["type"])
	})

	t.Run("Invalid Type", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/categories?type=non-emergency", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetSubcategories(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "subcat")
	token := tokenFor(t, citizen)

	t.Run("Success", func(t *testing.T) {
		url := fmt.Sprintf("/api/categories/%s/subcategories", fixture.NonEmergencyCategory.ID)
		req, _ := http.NewRequest("GET", url, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		if !assert.Equal(t, http.StatusOK, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		subcategories, ok := resp.Data.([]interface{})
		assert.True(t, ok)
		assert.Len(t, subcategories, 1)

		first, ok := subcategories[0].(map[string]interface{})
		assert.True(t, ok)
		assert.Equal(t, fixture.NonEmergencySub.Name, first["name"])
	})

	t.Run("Unknown Category", func(t *testing.T) {
		url := fmt.Sprintf("/api/categories/%s/subcategories", uuid.New())
		req, _ := http.NewRequest("GET", url, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Malformed Category ID", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/categories/not-a-uuid/subcategories", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := executeRequest(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
