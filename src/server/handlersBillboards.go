package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "storeadmin/src/app"
)

func (a *AppHandler) GetBillboards(c *gin.Context) {
	billboards, err := a.services.Billboards.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, billboards)
}

func (a *AppHandler) GetBillboard(c *gin.Context) {
	billboard, err := a.services.Billboards.Get(c.Request.Context(), c.Param("billboardId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, billboard)
}

func (a *AppHandler) PostBillboard(c *gin.Context) {
	var body app.BillboardInput
	if !bindJSON(c, &body) {
		return
	}
	billboard, err := a.services.Billboards.Create(c.Request.Context(), currentUser(c), c.Param("storeId"), body)
	if err != nil {
		writeBillboardError(c, err)
		return
	}
	c.JSON(http.StatusOK, billboard)
}

func (a *AppHandler) PatchBillboard(c *gin.Context) {
	var body app.BillboardInput
	if !bindJSON(c, &body) {
		return
	}
	_, err := a.services.Billboards.Update(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("billboardId"), body)
	if err != nil {
		writeBillboardError(c, err)
		return
	}
	c.String(http.StatusOK, "Billboard updated successfully")
}

func (a *AppHandler) DeleteBillboard(c *gin.Context) {
	_, err := a.services.Billboards.Delete(c.Request.Context(), currentUser(c),
		c.Param("storeId"), c.Param("billboardId"))
	if err != nil {
		writeBillboardError(c, err)
		return
	}
	c.String(http.StatusOK, "Billboard and image deleted successfully")
}
