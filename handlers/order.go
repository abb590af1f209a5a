package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetOrders lists the session's committed orders, newest last
func (a *App) GetOrders(c *gin.Context) {
	orders := a.Session.Orders()

	summaries := make([]gin.H, 0, len(orders))
	for i, o := range orders {
		summaries = append(summaries, gin.H{
			"index":                  i,
			"id":                     o.ID,
			"date":                   o.Date,
			"total":                  o.Total,
			"item_count":             len(o.Items),
			"awaiting_manager_reply": o.AwaitingManagerReply,
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": summaries})
}

// GetOrderDetails returns one committed order in full, comment thread
// included
func (a *App) GetOrderDetails(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order index"})
		return
	}

	order, err := a.Session.Order(index)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
