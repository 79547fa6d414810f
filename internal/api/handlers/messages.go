package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rohits-web03/fundbridge/internal/repositories"
)

type sendMessageData struct {
	Receiver *models.User `json:"receiver"`
	Content  string       `json:"content,omitempty"`
}

func (h *Handler) findReceiver(req *Request) (*models.User, *view.Result) {
	id, err := uuid.Parse(req.PathValue("receiver_id"))
	if err != nil {
		res := view.NotFound("User not found.")
		return nil, &res
	}
	receiver, err := h.store.FindUserByID(req.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		res := view.NotFound("User not found.")
		return nil, &res
	}
	if err != nil {
		res := h.internalError(req, "find receiver", err)
		return nil, &res
	}
	return receiver, nil
}

// GET /send_message/{receiver_id}
func (h *Handler) SendMessagePage(req *Request) view.Result {
	receiver, res := h.findReceiver(req)
	if res != nil {
		return *res
	}
	return view.Page("send_message", sendMessageData{Receiver: receiver})
}

// POST /send_message/{receiver_id}
// SendMessage godoc
// @Summary Send a message to another user
// @Tags Messages
// @Accept x-www-form-urlencoded
// @Produce json
// @Param receiver_id path string true "Receiver user id"
// @Param content formData string true "Message text"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /send_message/{receiver_id} [post]
func (h *Handler) SendMessage(req *Request) view.Result {
	receiver, res := h.findReceiver(req)
	if res != nil {
		return *res
	}

	form := messageForm{Content: strings.TrimSpace(req.PostFormValue("content"))}
	if err := h.validate.Struct(form); err != nil {
		return view.Invalid("send_message", http.StatusBadRequest, validationMessage(err),
			sendMessageData{Receiver: receiver, Content: form.Content})
	}

	msg := models.Message{
		Content:    form.Content,
		SenderID:   req.User().ID,
		ReceiverID: receiver.ID,
	}
	if err := h.store.CreateMessage(req.Context(), &msg); err != nil {
		return h.internalError(req, "create message", err)
	}
	return view.RedirectTo("/dashboard", view.StatusSuccess, "Message sent.")
}

// GET /messages
func (h *Handler) Messages(req *Request) view.Result {
	messages, err := h.store.ListMessagesFor(req.Context(), req.User().ID)
	if err != nil {
		return h.internalError(req, "list messages", err)
	}
	data := map[string]any{"messages": messages}
	if len(messages) == 0 {
		return view.PageWithNotice("messages", data, view.StatusInfo, "No messages yet.")
	}
	return view.Page("messages", data)
}
