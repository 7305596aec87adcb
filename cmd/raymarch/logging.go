package main

import (
	"github.com/leterax/go-raymarch/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("raymarch")

func setupLogging(ctx *cli.Context) {
	log.SetLevel(log.VerbosityLevel(ctx.GlobalBool("v"), ctx.GlobalBool("vv")))
}
