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
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/startrack-app/startrack/internal/teams"
	"github.com/startrack-app/startrack/pkg/auth/biometric"
	"github.com/startrack-app/startrack/pkg/logger"
)

type teamHandlers struct {
	svc      *teams.Service
	verifier biometric.Verifier
}

func (h *teamHandlers) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"teams": h.svc.List()})
}

func (h *teamHandlers) get(c *gin.Context) {
	team, ok := h.svc.Get(c.Param("teamID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "team not found"})
		return
	}
	c.JSON(http.StatusOK, team)
}

type createTeamRequest struct {
	Name string `json:"name"`
}

// create is gated behind device verification: building a team is the policy
// boundary, not the store.
func (h *teamHandlers) create(c *gin.Context) {
	if !h.verified(c, "Verify to create a team") {
		return
	}

	var req createTeamRequest
	// Body is optional; a missing or blank name gets the default.
	_ = c.ShouldBindJSON(&req)

	team := h.svc.Create(c.Request.Context(), req.Name)
	c.JSON(http.StatusCreated, team)
}

type renameTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *teamHandlers) rename(c *gin.Context) {
	var req renameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	// Unknown ids are a silent no-op by design.
	h.svc.Rename(c.Request.Context(), c.Param("teamID"), req.Name)
	c.Status(http.StatusNoContent)
}

func (h *teamHandlers) remove(c *gin.Context) {
	h.svc.Delete(c.Request.Context(), c.Param("teamID"))
	c.Status(http.StatusNoContent)
}

func (h *teamHandlers) addMember(c *gin.Context) {
	if !h.verified(c, "Verify to add a team member") {
		return
	}

	heroID, err := strconv.Atoi(c.Param("heroID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero id"})
		return
	}

	h.svc.AddMember(c.Request.Context(), c.Param("teamID"), heroID)
	c.Status(http.StatusNoContent)
}

func (h *teamHandlers) removeMember(c *gin.Context) {
	heroID, err := strconv.Atoi(c.Param("heroID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hero id"})
		return
	}

	h.svc.RemoveMember(c.Request.Context(), c.Param("teamID"), heroID)
	c.Status(http.StatusNoContent)
}

// verified runs the device verification policy for a gated mutation. Typed
// verification failures map to 403 with the failure kind; anything the
// verifier could not classify as a verification outcome maps to 503.
func (h *teamHandlers) verified(c *gin.Context, reason string) bool {
	ctx := c.Request.Context()

	if !h.verifier.CheckSupport(ctx) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "device verification is not available",
			"kind":  biometric.KindUnavailable.String(),
		})
		return false
	}

	ok, err := h.verifier.Authenticate(ctx, reason)
	if err != nil {
		var verr *biometric.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "verification failed",
				"kind":  verr.Kind.String(),
			})
			return false
		}
		logger.Logger(ctx).WithError(err).Error("verifier error")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "verification unavailable"})
		return false
	}
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "verification was not completed",
			"kind":  biometric.KindCancelled.String(),
		})
		return false
	}
	return true
}
