package main

import "teamboard/internal/app"

// @title           teamboard API
// @version         1.0
// @description     Team task publishing, role claiming and sub-task tracking.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	app.Run()
}
