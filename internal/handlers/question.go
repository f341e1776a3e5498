package handlers

import (
	"html/template"
	"net/http"
	"time"

	"askmate/internal/data"
	"askmate/internal/middleware"
	"askmate/internal/models"
	"askmate/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	store *data.Store
}

func NewQuestionHandler(store *data.Store) *QuestionHandler {
	return &QuestionHandler{store: store}
}

// answerView bundles an answer with its rendered body and comments for the
// detail template.
type answerView struct {
	data.AnswerView
	HTML     template.HTML
	Comments []data.CommentView
}

func currentUserID(c *gin.Context) *uint {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		id := user.(*models.User).ID
		return &id
	}
	return nil
}

func optionalImage(c *gin.Context) *string {
	if image := c.PostForm("image"); image != "" {
		return &image
	}
	return nil
}

// Index shows the five most recent questions.
func (h *QuestionHandler) Index(c *gin.Context) {
	questions, err := h.store.Questions(5)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load questions")
		return
	}
	Render(c, http.StatusOK, "question/list.html", gin.H{
		"Questions": questions,
		"Latest":    true,
		"Title":     "Latest questions",
	})
}

// List shows every question, sortable via query params.
func (h *QuestionHandler) List(c *gin.Context) {
	orderBy := c.DefaultQuery("order_by", "submission_time")
	orderDir := c.DefaultQuery("order_direction", "desc")

	cacheKey := "question:list:" + orderBy + ":" + orderDir
	if cached := utils.GetCache().Get(cacheKey); cached != nil {
		if hData, ok := cached.(gin.H); ok {
			Render(c, http.StatusOK, "question/list.html", cloneH(hData))
			return
		}
	}

	questions, err := h.store.QuestionsSorted(orderBy, orderDir)
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "Unknown sort order")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not load questions")
		return
	}

	renderData := gin.H{
		"Questions": questions,
		"OrderBy":   orderBy,
		"OrderDir":  orderDir,
		"Title":     "All questions",
	}
	utils.GetCache().Set(cacheKey, renderData, 30*time.Second)

	Render(c, http.StatusOK, "question/list.html", cloneH(renderData))
}

// cloneH keeps per-request keys (current user, path) out of the cached map.
func cloneH(src gin.H) gin.H {
	dst := make(gin.H, len(src)+2)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Detail shows one question with its answers and comments, counting the
// visit.
func (h *QuestionHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	if err := h.store.IncrementView(id, 1); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load question")
		return
	}

	question, err := h.store.QuestionByID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load question")
		return
	}
	if question == nil {
		RenderError(c, http.StatusNotFound, "No such question")
		return
	}

	answers, err := h.store.AnswersByQuestionID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load answers")
		return
	}
	views := make([]answerView, 0, len(answers))
	for _, a := range answers {
		comments, err := h.store.CommentsByAnswerID(a.ID)
		if err != nil {
			RenderError(c, http.StatusInternalServerError, "Could not load comments")
			return
		}
		views = append(views, answerView{
			AnswerView: a,
			HTML:       utils.RenderMarkdown(a.Message),
			Comments:   comments,
		})
	}

	comments, err := h.store.CommentsByQuestionID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load comments")
		return
	}

	Render(c, http.StatusOK, "question/detail.html", gin.H{
		"Question":     question,
		"QuestionHTML": utils.RenderMarkdown(question.Message),
		"Answers":      views,
		"Comments":     comments,
		"Title":        question.Title,
	})
}

func (h *QuestionHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "question/form.html", gin.H{
		"Title":  "Ask a question",
		"Action": "/add-question",
	})
}

func (h *QuestionHandler) Create(c *gin.Context) {
	question, err := h.store.InsertQuestion(data.NewQuestion{
		Title:   c.PostForm("title"),
		Message: c.PostForm("message"),
		Image:   optionalImage(c),
		UserID:  currentUserID(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			Render(c, http.StatusBadRequest, "question/form.html", gin.H{
				"Error":     "Title and message are both required",
				"Title":     "Ask a question",
				"Action":    "/add-question",
				"FormTitle": c.PostForm("title"),
				"Message":   c.PostForm("message"),
			})
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save question")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(question.ID))
}

func (h *QuestionHandler) ShowEdit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	question, err := h.store.QuestionByID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load question")
		return
	}
	if question == nil {
		RenderError(c, http.StatusNotFound, "No such question")
		return
	}
	Render(c, http.StatusOK, "question/form.html", gin.H{
		"Title":     "Edit question",
		"Action":    "/question/" + c.Param("id") + "/edit",
		"FormTitle": question.Title,
		"Message":   question.Message,
	})
}

func (h *QuestionHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	err := h.store.UpdateQuestion(id, data.QuestionUpdate{
		Title:   c.PostForm("title"),
		Message: c.PostForm("message"),
		Image:   optionalImage(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "Title and message are both required")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save question")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+c.Param("id"))
}

func (h *QuestionHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	if err := h.store.DeleteQuestion(id); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete question")
		return
	}
	c.Redirect(http.StatusFound, "/list")
}

func (h *QuestionHandler) Search(c *gin.Context) {
	query := c.Query("q")

	questions, count, err := h.store.Search(query, "submission_time", "desc")
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	Render(c, http.StatusOK, "search.html", gin.H{
		"Questions": questions,
		"Count":     count,
		"Query":     query,
		"Title":     "Search",
	})
}
