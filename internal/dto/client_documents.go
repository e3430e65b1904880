package dto

// EmailDocumentsRequest is the body of POST /api/client/email-documents.
type EmailDocumentsRequest struct {
	ClientID string `json:"clientId"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}
