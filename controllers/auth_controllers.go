package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/utils"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login menukar PIN admin dengan token sesi.
func (ac *AuthController) Login(c *gin.Context) {
	type ReqBody struct {
		PIN string `json:"pin" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	expected := os.Getenv("ADMIN_PIN")
	if expected == "" {
		expected = "1234" // default untuk development
	}

	if subtle.ConstantTimeCompare([]byte(body.PIN), []byte(expected)) != 1 {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("PIN salah"))
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{"token": token})
}
