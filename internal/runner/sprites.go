package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Character art for every sprite. Drawn stretched over the entity's box,
// so the art only has to keep proportions roughly right.
var (
	spriteRun1 = core.Bitmap{Color: core.ColorBrightGreen, Rows: []string{
		"   ▄██▄",
		"   ██▀▀",
		"▄▄███▄ ",
		" ▀██▀  ",
		"  █ ▀  ",
	}}
	spriteRun2 = core.Bitmap{Color: core.ColorBrightGreen, Rows: []string{
		"   ▄██▄",
		"   ██▀▀",
		"▄▄███▄ ",
		" ▀██▀  ",
		"  ▀ █  ",
	}}
	spriteJump = core.Bitmap{Color: core.ColorBrightGreen, Rows: []string{
		"   ▄██▄",
		"   ██▀▀",
		"▄▄███▄ ",
		" ▀██▀  ",
		"  ▀ ▀  ",
	}}
	spriteDead = core.Bitmap{Color: core.ColorBrightRed, Rows: []string{
		"   ▄██▄",
		"   █x█▀",
		"▄▄███▄ ",
		" ▀██▀  ",
		"  █ █  ",
	}}

	spriteCacti = []core.Bitmap{
		{Color: core.ColorGreen, Rows: []string{
			" █ ",
			"▌█▐",
			"▀█▀",
			" █ ",
		}},
		{Color: core.ColorGreen, Rows: []string{
			" █▐",
			"▌█▀",
			"▀█ ",
			" █ ",
		}},
		{Color: core.ColorGreen, Rows: []string{
			"▐█ ",
			"▀█▌",
			" █▀",
			" █ ",
		}},
		{Color: core.ColorGreen, Rows: []string{
			"▐█▌",
			"▐█▌",
			" █ ",
			" █ ",
		}},
	}

	spriteBird1 = core.Bitmap{Color: core.ColorYellow, Rows: []string{
		" ▄    ",
		"▀██▄▄▄",
		"  ▀▀  ",
	}}
	spriteBird2 = core.Bitmap{Color: core.ColorYellow, Rows: []string{
		"      ",
		"▀██▀▀▀",
		"  █▀  ",
	}}

	spriteCloud = core.Bitmap{Color: core.ColorGray, Rows: []string{
		"  ▄▄▄  ",
		"▄█████▄",
	}}

	spriteGround = core.Bitmap{Color: core.ColorGray, Rows: []string{
		"══════════",
		" .   ·  . ",
	}}
)

// Sprite sizes in world pixels for the sprites that have no config entry.
const (
	cloudWidth   = 46
	cloudHeight  = 14
	groundTile   = 100
	groundHeight = 12
)
