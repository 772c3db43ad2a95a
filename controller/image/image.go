package image

import (
	"io"
	"log"
	"net/http"
	"strings"

	"sitecms_be/config"
	"sitecms_be/helper/at"
	"sitecms_be/helper/ghupload"
	"sitecms_be/helper/watoken"
	"sitecms_be/model"
)

// UploadImage receives a multipart image from the admin editor, pushes it to
// the GitHub content repository and returns the public URL. The URL is then
// stored on a banner/service/member document by a follow-up update call.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	_, err := watoken.Decode(config.PublicKey, at.GetLoginFromHeader(r))
	if err != nil {
		at.WriteJSON(w, http.StatusUnauthorized, model.Fail(http.StatusUnauthorized, "Invalid or expired token. Please log in again."))
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Failed to parse multipart form data."))
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Failed to read the uploaded file."))
		return
	}
	defer file.Close()

	if handler.Size > 5<<20 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "File too large (maximum 5MB)."))
		return
	}

	dot := strings.LastIndex(handler.Filename, ".")
	if dot < 0 {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Unsupported file format (only .jpg, .jpeg, .png)."))
		return
	}
	ext := strings.ToLower(handler.Filename[dot:])
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	if !allowed[ext] {
		at.WriteJSON(w, http.StatusBadRequest, model.Fail(http.StatusBadRequest, "Unsupported file format (only .jpg, .jpeg, .png)."))
		return
	}

	fileContent, err := io.ReadAll(file)
	if err != nil {
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to read the uploaded file."))
		return
	}

	hashedFileName := ghupload.CalculateHash(fileContent) + ext
	pathFile := "ContentImages/" + hashedFileName

	content, _, err := ghupload.GithubUpload(config.GHAccessToken, "sitecms-bot", "bot@sitecms.vn", fileContent, "sitecms", "content-images", pathFile, true)
	if err != nil {
		log.Println("[ERROR] Failed to upload image to GitHub:", err)
		at.WriteJSON(w, http.StatusInternalServerError, model.Fail(http.StatusInternalServerError, "Failed to upload image."))
		return
	}

	at.WriteJSON(w, http.StatusOK, model.Ok(http.StatusOK, map[string]string{
		"url": *content.Content.HTMLURL,
	}))
}
