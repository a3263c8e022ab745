package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/device-management-toolkit/redfish-inventory/internal/entity"
	redfishv1 "github.com/device-management-toolkit/redfish-inventory/internal/entity/redfish/v1"
	"github.com/device-management-toolkit/redfish-inventory/internal/usecase/inventory"
	"github.com/device-management-toolkit/redfish-inventory/pkg/inventoryerrors"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

type inventoryRoutes struct {
	latest inventory.SnapshotSource
	store  inventory.Store
	l      logger.Interface
}

// ChassisSystems is the answer to a chassis-to-systems lookup. Dangling
// lists linked paths that were not read; it is only known for the
// in-memory snapshot.
type ChassisSystems struct {
	Chassis  redfishv1.ResourcePath   `json:"Chassis"`
	Systems  []redfishv1.ResourcePath `json:"Systems"`
	Dangling []redfishv1.ResourcePath `json:"Dangling,omitempty"`
}

// NewInventoryRoutes registers the inventory endpoints. store may be nil.
func NewInventoryRoutes(handler *gin.RouterGroup, latest inventory.SnapshotSource, store inventory.Store, l logger.Interface) {
	r := &inventoryRoutes{latest: latest, store: store, l: l}

	h := handler.Group("/inventory")
	{
		h.GET("", r.snapshot)
		h.GET("/chassis", r.chassis)
		h.GET("/systems", r.systems)
		h.GET("/chassis/systems", r.chassisSystems)
	}
}

// current prefers the in-memory snapshot and falls back to the store.
func (r *inventoryRoutes) current(c *gin.Context) (entity.Snapshot, error) {
	if snap, ok := r.latest.Load(); ok {
		return snap, nil
	}

	if r.store == nil {
		return entity.Snapshot{}, errNoSnapshot
	}

	snap, err := r.store.LatestSnapshot(c.Request.Context())

	var nfErr inventoryerrors.NotFoundError
	if errors.As(err, &nfErr) {
		return entity.Snapshot{}, errNoSnapshot
	}

	return snap, err
}

func (r *inventoryRoutes) snapshot(c *gin.Context) {
	snap, err := r.current(c)
	if err != nil {
		r.l.Error(err, "http - v1 - snapshot")
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, snap)
}

func (r *inventoryRoutes) chassis(c *gin.Context) {
	snap, err := r.current(c)
	if err != nil {
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, snap.Chassis)
}

func (r *inventoryRoutes) systems(c *gin.Context) {
	snap, err := r.current(c)
	if err != nil {
		ErrorResponse(c, err)

		return
	}

	c.JSON(http.StatusOK, snap.Systems)
}

func (r *inventoryRoutes) chassisSystems(c *gin.Context) {
	raw := c.Query("path")
	if raw == "" {
		ErrorResponse(c, errMissingParam)

		return
	}

	path, err := redfishv1.NewResourcePath(raw)
	if err != nil {
		ErrorResponse(c, err)

		return
	}

	if snap, ok := r.latest.Load(); ok {
		for ch := range snap.Chassis.All() {
			if ch.Path != path {
				continue
			}

			found, dangling := inventory.Resolve(ch, snap.Systems)

			out := ChassisSystems{Chassis: path, Systems: make([]redfishv1.ResourcePath, 0, len(found)), Dangling: dangling}
			for _, s := range found {
				out.Systems = append(out.Systems, s.Path)
			}

			c.JSON(http.StatusOK, out)

			return
		}

		ErrorResponse(c, errNoChassis)

		return
	}

	if r.store == nil {
		ErrorResponse(c, errNoSnapshot)

		return
	}

	systems, err := r.store.SystemsForChassis(c.Request.Context(), path)
	if err != nil {
		r.l.Error(err, "http - v1 - chassisSystems")
		ErrorResponse(c, err)

		return
	}

	if systems == nil {
		systems = []redfishv1.ResourcePath{}
	}

	c.JSON(http.StatusOK, ChassisSystems{Chassis: path, Systems: systems})
}
