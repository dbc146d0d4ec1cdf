// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	propertieshandler "realty_backend/internal/feature/properties/transport/handler"
	usershandler "realty_backend/internal/feature/users/transport/handler"
	"realty_backend/internal/interface/handler"
)

// NewRouter はすべてのルートを登録したginエンジンを生成します。
func NewRouter(users *usershandler.UserHandler, properties *propertieshandler.PropertyHandler) *gin.Engine {
	r := gin.Default()

	// すべてのオリジンを許可（このAPIは認証を持たない）
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/health", handler.Health)

	api := r.Group("/api")
	{
		u := api.Group("/users")
		{
			u.POST("", users.Create)
			u.GET("", users.List)
			u.GET("/:id", users.GetByID)
			u.PUT("/:id", users.Update)
			u.DELETE("/:id", users.Delete)
		}

		p := api.Group("/properties")
		{
			p.POST("", properties.Create)
			p.GET("", properties.List)
			p.GET("/:id", properties.GetByID)
			p.PUT("/:id", properties.Update)
			p.DELETE("/:id", properties.Delete)
		}
	}

	return r
}
