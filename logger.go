package glapp

import "github.com/go-theft-auto/glapp/log"

var logger = log.New("glapp")
