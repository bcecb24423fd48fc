package test

import (
	"CivicReportAPI/internal/helper"
	"CivicReportAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uploadFile(t *testing.T, token, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write(content)
	writer.Close()

	req, _ := http.NewRequest("POST", "/api/media/report-images", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestUploadReportImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		clearDatabase(context.Background())
		citizen := createTestUser(t, "upload")
		token := tokenFor(t, citizen)

		rr := uploadFile(t, token, "evidence.png", pngBytes(t))

		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
		}

		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)

		data, ok := resp.Data.(map[string]interface{})
		assert.True(t, ok)
		assert.NotEmpty(t, data["reference"])
		assert.Equal(t, "evidence.png", data["original_name"])
		assert.Equal(t, "image/png", data["mime_type"])
		assert.NotEmpty(t, data["url"])

		count, _ := testClient.Media.Query().Count(context.Background())
		assert.Equal(t, 1, count)
	})

	t.Run("Non Image Rejected", func(t *testing.T) {
		clearDatabase(context.Background())
		citizen := createTestUser(t, "uploadtext")
		token := tokenFor(t, citizen)

		rr := uploadFile(t, token, "notes.txt", []byte("just some text"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		count, _ := testClient.Media.Query().Count(context.Background())
		assert.Equal(t, 0, count)
	})

	t.Run("Requires Auth", func(t *testing.T) {
		clearDatabase(context.Background())

		rr := uploadFile(t, "bogus", "evidence.png", pngBytes(t))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSubmitReportWithUploadedImages(t *testing.T) {
	clearDatabase(context.Background())
	fixture := seedCatalog(t)
	citizen := createTestUser(t, "withimages")
	token := tokenFor(t, citizen)

	references := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		rr := uploadFile(t, token, "evidence.png", pngBytes(t))
		if !assert.Equal(t, http.StatusCreated, rr.Code) {
			printBody(t, rr)
			t.FailNow()
		}
		var resp helper.ResponseSuccess
		json.Unmarshal(rr.Body.Bytes(), &resp)
		data, _ := resp.Data.(map[string]interface{})
		references = append(references, data["reference"].(string))
	}

	rr := submitReport(t, token, model.SubmitReportRequest{
		Title:       "Broken swing in city park",
		Description: "Photos attached, chain snapped",
		Type:        "non_emergency",
		CategoryID:  fixture.NonEmergencyCategory.ID,
		ImageRefs:   references,
	})

	if !assert.Equal(t, http.StatusCreated, rr.Code) {
		printBody(t, rr)
	}

	var resp helper.ResponseSuccess
	json.Unmarshal(rr.Body.Bytes(), &resp)
	data, _ := resp.Data.(map[string]interface{})

	urls, ok := data["image_urls"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, urls, 2)

	t.Run("Another User Cannot Reuse The References", func(t *testing.T) {
		other := createTestUser(t, "thief")

		rr := submitReport(t, tokenFor(t, other), model.SubmitReportRequest{
			Title:       "Report with borrowed evidence",
			Description: "These references belong to someone else",
			Type:        "non_emergency",
			CategoryID:  fixture.NonEmergencyCategory.ID,
			ImageRefs:   references,
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
