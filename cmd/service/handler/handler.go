package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wayfarer-app/wayfarer/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
