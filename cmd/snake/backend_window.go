//go:build ebiten

package main

import _ "snake-u/internal/platform/window"
