package main

import (
	"kgserver/internal/server"
	"kgserver/internal/util"
	"kgserver/pkg/logger"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	logger.Init(logger.NewConsole(logger.ConsoleParams{
		Debug: debug,
	}))

	server.Init()
}
