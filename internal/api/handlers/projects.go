package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rohits-web03/fundbridge/internal/repositories"
)

const noMatchingProjects = "No projects match your filters."

type projectList struct {
	Projects []models.Project `json:"projects"`
	Filters  *listingFilters  `json:"filters,omitempty"`
}

// GET /dashboard
// Students see their own projects, investors the filtered listing.
func (h *Handler) Dashboard(req *Request) view.Result {
	if req.User().Is(models.RoleStudent) {
		return h.DashboardStudent(req)
	}
	return h.DashboardInvestor(req)
}

// GET /dashboard_student
func (h *Handler) DashboardStudent(req *Request) view.Result {
	projects, err := h.store.ListProjectsByOwner(req.Context(), req.User().ID)
	if err != nil {
		return h.internalError(req, "list own projects", err)
	}
	data := projectList{Projects: projects}
	if len(projects) == 0 {
		return view.PageWithNotice("dashboard_student", data, view.StatusInfo, "You have not created any projects yet.")
	}
	return view.Page("dashboard_student", data)
}

// GET /dashboard_investor
func (h *Handler) DashboardInvestor(req *Request) view.Result {
	return h.listProjects(req, "dashboard_investor")
}

// GET /projects
// ListProjects godoc
// @Summary List projects
// @Description All filters are optional and combine with AND. Search is a case-insensitive substring of title or description.
// @Tags Projects
// @Produce json
// @Param search query string false "Substring of title or description"
// @Param sector query string false "Exact sector"
// @Param min_amount query number false "Inclusive lower bound on target amount"
// @Param max_amount query number false "Inclusive upper bound on target amount"
// @Success 200 {object} utils.Payload
// @Failure 303 "Redirect to /login when not authenticated"
// @Router /projects [get]
func (h *Handler) Projects(req *Request) view.Result {
	return h.listProjects(req, "projects")
}

func (h *Handler) listProjects(req *Request, page string) view.Result {
	filters := parseListingFilters(req.URL.Query())
	projects, err := h.store.ListProjects(req.Context(), filters.toFilter())
	if err != nil {
		return h.internalError(req, "list projects", err)
	}
	data := projectList{Projects: projects, Filters: &filters}
	if len(projects) == 0 {
		return view.PageWithNotice(page, data, view.StatusInfo, noMatchingProjects)
	}
	return view.Page(page, data)
}

// GET /add_project
func (h *Handler) AddProjectPage(req *Request) view.Result {
	return view.Page("add_project", nil)
}

// POST /add_project
// AddProject godoc
// @Summary Create a project owned by the calling student
// @Tags Projects
// @Accept x-www-form-urlencoded
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param target_amount formData number true "Target amount, greater than zero (required_amount is accepted too)"
// @Param image_url formData string false "Image URL"
// @Param sector formData string false "Sector label"
// @Success 303 "Redirect to /dashboard"
// @Failure 400 {object} utils.Payload
// @Router /add_project [post]
func (h *Handler) AddProject(req *Request) view.Result {
	form := parseProjectForm(req)
	if msg := h.validateProject(form); msg != "" {
		return view.Invalid("add_project", http.StatusBadRequest, msg, form)
	}

	project := models.Project{
		Title:        form.Title,
		Description:  form.Description,
		TargetAmount: form.TargetAmount,
		ImageURL:     form.ImageURL,
		Sector:       form.Sector,
		UserID:       req.User().ID,
	}
	if err := h.store.CreateProject(req.Context(), &project); err != nil {
		if errors.Is(err, repositories.ErrInvalidAmount) {
			return view.Invalid("add_project", http.StatusBadRequest, "Target amount must be a positive number.", form)
		}
		return h.internalError(req, "create project", err)
	}

	h.log.Info().Str("project_id", project.ID.String()).Str("user_id", project.UserID.String()).Msg("project created")
	return view.RedirectTo("/dashboard", view.StatusSuccess, "Project created successfully.")
}

// GET /add_project/image_url?filename=
// ProjectImageUpload godoc
// @Summary Presign an upload for a project image
// @Description Returns a presigned PUT URL and the public URL to submit as image_url.
// @Tags Projects
// @Produce json
// @Param filename query string true "Original file name, .jpg .jpeg .png or .webp"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Failure 503 {object} utils.Payload
// @Router /add_project/image_url [get]
func (h *Handler) ProjectImageUpload(req *Request) view.Result {
	if h.images == nil {
		return view.Result{
			View:    "add_project",
			Code:    http.StatusServiceUnavailable,
			Status:  view.StatusError,
			Message: "Image uploads are not configured.",
		}
	}

	upload, err := h.images.PresignProjectImage(req.Context(), req.User().ID, req.URL.Query().Get("filename"))
	if errors.Is(err, repositories.ErrUnsupportedImage) {
		return view.Invalid("add_project", http.StatusBadRequest, "Only .jpg, .jpeg, .png and .webp images are allowed.", nil)
	}
	if err != nil {
		return h.internalError(req, "presign image upload", err)
	}
	return view.Page("image_upload", upload)
}

// GET /project/{project_id}
func (h *Handler) ProjectDetail(req *Request) view.Result {
	id, err := uuid.Parse(req.PathValue("project_id"))
	if err != nil {
		return view.NotFound("Project not found.")
	}

	project, err := h.store.FindProject(req.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return view.NotFound("Project not found.")
	}
	if err != nil {
		return h.internalError(req, "find project", err)
	}
	return view.Page("project", project)
}
