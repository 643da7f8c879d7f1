package controllers

import (
	"wellness/backend/config"
	"wellness/backend/middleware"
	"wellness/backend/models"
	"wellness/backend/router"
	"wellness/backend/store"
	"wellness/backend/utils"
)

type SupportController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewSupportController(st *store.Store, cfg *config.Config) *SupportController {
	return &SupportController{Store: st, Cfg: cfg}
}

// Create files a support request stamped with the caller's email, category
// defaulting to GENERAL and status OPEN.
func (sc *SupportController) Create(c *router.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	type CreateInput struct {
		Subject  string `json:"subject"`
		Category string `json:"category"`
		Message  string `json:"message"`
	}

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	db, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	request := models.SupportRequest{
		ID:           utils.NewID("s"),
		Subject:      input.Subject,
		Category:     input.Category,
		Message:      input.Message,
		Status:       models.SupportOpen,
		StudentEmail: user.Email,
	}
	if request.Category == "" {
		request.Category = models.SupportCategoryDefault
	}

	// Newest first
	db.SupportRequests = append([]models.SupportRequest{request}, db.SupportRequests...)
	db.Usage.SupportSubmissions++

	if err := sc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Created(c, "Request submitted.")
}

// List returns every support request for the admin queue.
func (sc *SupportController) List(c *router.Ctx) error {
	db, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}
	return utils.Data(c, db.SupportRequests)
}

// UpdateStatus sets the request status. Any transition between the three
// statuses is allowed, including reopening a resolved request. Omitting the
// status keeps the current one.
func (sc *SupportController) UpdateStatus(c *router.Ctx) error {
	type UpdateInput struct {
		Status string `json:"status"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Status != "" && !models.ValidSupportStatus(input.Status) {
		return utils.BadRequest(c, "Invalid status")
	}

	db, err := sc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, "Could not load data")
	}

	id := c.Params("id")
	for i := range db.SupportRequests {
		if db.SupportRequests[i].ID == id && input.Status != "" {
			db.SupportRequests[i].Status = input.Status
		}
	}

	if err := sc.Store.Save(db); err != nil {
		return utils.InternalServerError(c, "Could not save data")
	}
	return utils.Message(c, 200, "Status updated.")
}
