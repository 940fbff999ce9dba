package handlers

import (
	"fusion/auth"
	"fusion/db"
	"fusion/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserRegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email"`
	Password string `form:"password" binding:"required"`
}

type UserLoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func UserRegister(c *gin.Context) {
	postReq := UserRegisterRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserCreate(postReq.Username, postReq.Name, postReq.Email, postReq.Password)
	if err == models.ErrUsernameTaken || err == models.ErrEmailTaken {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "id": user.ID, "name": user.Name})
}

func UserLogin(c *gin.Context) {
	postReq := UserLoginRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, success := models.UserLogin(postReq.Username, postReq.Password)
	if !success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	auth.LoadSession(c).LoginUser(&user)
	c.JSON(http.StatusOK, gin.H{"error": "", "name": user.Name, "is_admin": user.IsAdmin})
}

func UserLogout(c *gin.Context, user *models.User) {
	clearStateFor(user.ID)
	auth.LoadSession(c).LogoutUser()
	c.JSON(http.StatusOK, gin.H{"error": ""})
}

func UserStatus(c *gin.Context, user *models.User) {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"username": user.Username,
		"name":     user.Name,
		"email":    email,
		"is_admin": user.IsAdmin,
	})
}

type ProfileSaveRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// ProfileSave updates any of name, email and password. Each changed field
// gets its own audit entry, matching the history view's granularity.
func ProfileSave(c *gin.Context, user *models.User) {
	postReq := ProfileSaveRequest{}
	if err := c.ShouldBindWith(&postReq, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	changes := []string{}
	if postReq.Password != "" {
		user.SetPassword(postReq.Password)
		changes = append(changes, "Updated password.")
	}
	if postReq.Email != "" && (user.Email == nil || *user.Email != postReq.Email) {
		taken, err := models.EmailTakenByOther(postReq.Email, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
			return
		}
		if taken {
			c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrEmailTaken.Error()})
			return
		}
		email := postReq.Email
		user.Email = &email
		changes = append(changes, "Updated email address.")
	}
	if postReq.Name != "" && postReq.Name != user.Name {
		user.Name = postReq.Name
		changes = append(changes, "Updated name.")
	}
	if len(changes) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "", "changed": 0})
		return
	}
	update := map[string]interface{}{
		"name":      user.Name,
		"email":     user.Email,
		"password":  user.Password,
		"pass_salt": user.PassSalt,
	}
	if err := db.Instance.Model(user).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DB error"})
		return
	}
	for _, change := range changes {
		logActivity(user, change)
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "changed": len(changes)})
}
