package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pronunciationapp/backend/internal/entities"
)

// ResourceStore is the service contract behind a CRUD resource.
type ResourceStore[T any] interface {
	GetAll() ([]T, error)
	GetByID(id string) (*T, error)
	Create(record *T) (*T, error)
	Update(record *T) (*T, error)
	DeleteByID(id string) error
	DeleteAll() error
	ExistsByID(id string) (bool, error)
}

// ResourceOptions configures the wording and update behaviour of a resource.
type ResourceOptions struct {
	// Name is used in error messages, e.g. "category".
	Name string
	// AllDeletedMessage is returned by DELETE on the collection.
	AllDeletedMessage string
	// DeletedMessage is returned by DELETE on a single record.
	DeletedMessage string
	// KeepBodyID saves the request body under its own id instead of the
	// id in the path. The path id is still the one checked for existence.
	KeepBodyID bool
	// EchoUpdateRequest answers an update with the request body as it was
	// decoded, before the store saw it, instead of the saved record.
	EchoUpdateRequest bool
}

// ResourceController serves list/get/create/update/delete for one entity.
type ResourceController[T any, PT entities.Record[T]] struct {
	store   ResourceStore[T]
	opts    ResourceOptions
	present func(T) any
}

func NewResourceController[T any, PT entities.Record[T]](store ResourceStore[T], opts ResourceOptions) *ResourceController[T, PT] {
	return &ResourceController[T, PT]{
		store:   store,
		opts:    opts,
		present: func(record T) any { return record },
	}
}

// WithPresenter sets how records are rendered in responses.
func (rc *ResourceController[T, PT]) WithPresenter(present func(T) any) *ResourceController[T, PT] {
	rc.present = present
	return rc
}

// List returns every record. An empty collection answers 404 with no body.
func (rc *ResourceController[T, PT]) List(c *gin.Context) {
	records, err := rc.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "list "+rc.opts.Name)
		return
	}

	if len(records) == 0 {
		respondEmptyNotFound(c)
		return
	}

	out := make([]any, len(records))
	for i, record := range records {
		out[i] = rc.present(record)
	}
	c.JSON(http.StatusOK, out)
}

func (rc *ResourceController[T, PT]) Get(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	record, err := rc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, rc.opts.Name, "get "+rc.opts.Name)
		return
	}

	c.JSON(http.StatusOK, rc.present(*record))
}

func (rc *ResourceController[T, PT]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	saved, err := rc.store.Create(&record)
	if err != nil {
		respondStoreError(c, err, rc.opts.Name, "create "+rc.opts.Name)
		return
	}

	c.JSON(http.StatusOK, rc.present(*saved))
}

// Update replaces the record at the path id. Unknown ids answer 404
// without writing anything.
func (rc *ResourceController[T, PT]) Update(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	exists, err := rc.store.ExistsByID(id)
	if err != nil {
		respondInternalError(c, err, "update "+rc.opts.Name)
		return
	}
	if !exists {
		respondNotFound(c, rc.opts.Name)
		return
	}

	if !rc.opts.KeepBodyID {
		PT(&record).SetID(id)
	}
	requested := record

	saved, err := rc.store.Update(&record)
	if err != nil {
		respondStoreError(c, err, rc.opts.Name, "update "+rc.opts.Name)
		return
	}

	if rc.opts.EchoUpdateRequest {
		c.JSON(http.StatusOK, rc.present(requested))
		return
	}
	c.JSON(http.StatusOK, rc.present(*saved))
}

func (rc *ResourceController[T, PT]) DeleteAll(c *gin.Context) {
	if err := rc.store.DeleteAll(); err != nil {
		respondInternalError(c, err, "delete all "+rc.opts.Name)
		return
	}
	respondText(c, rc.opts.AllDeletedMessage)
}

func (rc *ResourceController[T, PT]) Delete(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	exists, err := rc.store.ExistsByID(id)
	if err != nil {
		respondInternalError(c, err, "delete "+rc.opts.Name)
		return
	}
	if !exists {
		respondNotFound(c, rc.opts.Name)
		return
	}

	if err := rc.store.DeleteByID(id); err != nil {
		respondInternalError(c, err, "delete "+rc.opts.Name)
		return
	}
	respondText(c, rc.opts.DeletedMessage)
}

// register wires the standard routes of a resource onto group.
func (rc *ResourceController[T, PT]) register(group *gin.RouterGroup, createPath string) {
	group.GET("", rc.List)
	group.GET("/:id", rc.Get)
	group.POST(createPath, rc.Create)
	group.PUT("/:id", rc.Update)
	group.DELETE("", rc.DeleteAll)
	group.DELETE("/:id", rc.Delete)
}
