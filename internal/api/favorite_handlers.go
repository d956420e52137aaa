/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/startrack-app/startrack/internal/favorites"
	"github.com/startrack-app/startrack/pkg/common/structs"
)

type favoriteHandlers struct {
	svc *favorites.Service
}

func (h *favoriteHandlers) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.State())
}

// add favorites the hero in the request body. Idempotent: re-adding an
// existing favorite still returns the current state.
func (h *favoriteHandlers) add(c *gin.Context) {
	var hero structs.Superhero
	if err := c.ShouldBindJSON(&hero); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero payload"})
		return
	}
	if hero.ID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hero id is required"})
		return
	}

	h.svc.Add(c.Request.Context(), &hero)
	c.JSON(http.StatusOK, h.svc.State())
}

func (h *favoriteHandlers) isFavorite(c *gin.Context) {
	heroID, err := strconv.Atoi(c.Param("heroID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorite": h.svc.IsFavorite(heroID)})
}

func (h *favoriteHandlers) remove(c *gin.Context) {
	heroID, err := strconv.Atoi(c.Param("heroID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero id"})
		return
	}

	h.svc.Remove(c.Request.Context(), heroID)
	c.JSON(http.StatusOK, h.svc.State())
}
