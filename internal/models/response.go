package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single object.
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ListData wraps a collection.
type ListData struct {
	List interface{} `json:"list"`
}

// ResponseCurrentTime is the currentTime value stamped on every envelope, in milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

// NewOKResponse wraps data in a 200 envelope.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

func NewListResponse(list interface{}) ResponseModel {
	return NewOKResponse(ListData{List: list})
}

// NewErrorResponse builds an envelope for a non-2xx status.
func NewErrorResponse(code int, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Text:        text,
		Version:     2,
	}
}
