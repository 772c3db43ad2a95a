package controller

import (
	"net/http"

	"sitecms_be/helper/at"
	"sitecms_be/model"
)

func GetHome(respw http.ResponseWriter, req *http.Request) {
	at.WriteJSON(respw, http.StatusOK, model.Response{
		Success:    true,
		Message:    "sitecms API is running",
		StatusCode: http.StatusOK,
	})
}
