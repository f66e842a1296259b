package studies

import (
	"net/http"

	studiesdomain "aurora-app-go/internal/domain/studies"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Studies *studiesdomain.Service
	log     logger.Logger
}

func New(studies *studiesdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Studies: studies,
		log:     log,
	}
}

type createTopicRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

type topicStatusRequest struct {
	Status studiesdomain.TopicStatus `json:"status"`
}

type createBookRequest struct {
	Title string `json:"title"`
}

type rateBookRequest struct {
	Rating int `json:"rating"`
}

type overviewResponse struct {
	Topics   []studiesdomain.Topic  `json:"topics"`
	Books    []studiesdomain.Book   `json:"books"`
	Progress studiesdomain.Progress `json:"progress"`
}

func (h *Handlers) Overview(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	topics, err := h.Studies.ListTopics(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	books, err := h.Studies.ListBooks(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}

	commonhandler.WriteJSON(w, http.StatusOK, overviewResponse{
		Topics:   topics,
		Books:    books,
		Progress: studiesdomain.Summarize(topics, books),
	})
}

func (h *Handlers) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Studies.AddTopic(r.Context(), ns, studiesdomain.AddTopicInput{Subject: req.Subject, Topic: req.Topic})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) SetTopicStatus(w http.ResponseWriter, r *http.Request) {
	var req topicStatusRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	updated, err := h.Studies.SetTopicStatus(r.Context(), ns, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Studies.DeleteTopic(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req createBookRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Studies.AddBook(r.Context(), ns, req.Title)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) ToggleBook(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	updated, err := h.Studies.ToggleBook(r.Context(), ns, chi.URLParam(r, "id"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) RateBook(w http.ResponseWriter, r *http.Request) {
	var req rateBookRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	updated, err := h.Studies.RateBook(r.Context(), ns, chi.URLParam(r, "id"), req.Rating)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handlers) DeleteBook(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Studies.DeleteBook(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}
