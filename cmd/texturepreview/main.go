// Smoke texture preview tool - shows the generated puff atlas for a seed.
//
// Usage: go run ./cmd/texturepreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/texture"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	cellPreview  = 256
	panelWidth   = windowWidth - previewSize - 30
	maxSeed      = 10000
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Smoke Texture Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	img := rl.GenImageColor(texture.Size, texture.Size, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(tex)

	var seed int64 = 1
	col, row := 0, 0
	needsRegen := true

	var atlas *texture.Atlas

	for !rl.WindowShouldClose() {
		if needsRegen {
			atlas = texture.Generate(seed)
			rl.UpdateTexture(tex, atlas.RGBA())
			needsRegen = false
		}

		// Cell selection by clicking the atlas
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			m := rl.GetMousePosition()
			if m.X >= 10 && m.X < 10+previewSize && m.Y >= 10 && m.Y < 10+previewSize {
				scale := float32(previewSize) / texture.Size
				col = int((m.X - 10) / scale / texture.CellSize)
				row = int((m.Y - 10) / scale / texture.CellSize)
			}
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		// Draw atlas
		rl.DrawTexturePro(
			tex,
			rl.Rectangle{Width: texture.Size, Height: texture.Size},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{}, 0, rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		cellScreen := int32(previewSize / texture.Cells)
		rl.DrawRectangleLines(10+int32(col)*cellScreen, 10+int32(row)*cellScreen, cellScreen, cellScreen, rl.Yellow)

		// Stats for the selected cell
		ox, oy := texture.CellOrigin(col, row)
		var sum, peak int
		for y := range texture.CellSize {
			for x := range texture.CellSize {
				v := int(atlas.At(ox+x, oy+y))
				sum += v
				peak = max(peak, v)
			}
		}
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Cell (%d,%d)  Peak: %d  Avg: %.1f", col, row, peak, float64(sum)/(texture.CellSize*texture.CellSize)),
			15, statsY, 16, rl.LightGray)
		rl.DrawText("Click a cell to inspect it", 15, statsY+20, 16, rl.Gray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Smoke Texture", int32(panelX), int32(panelY), 20, rl.LightGray)
		panelY += 35

		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", fmt.Sprintf("%d", maxSeed),
			float32(seed), 0, maxSeed,
		)
		rl.DrawText(fmt.Sprintf("%d", seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if int64(newSeed) != seed {
			seed = int64(newSeed)
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 30}, "Random Seed") {
			seed = rand.Int63n(maxSeed)
			needsRegen = true
		}
		panelY += 50

		// Selected cell magnified
		rl.DrawText("Selected cell", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		rl.DrawTexturePro(
			tex,
			rl.Rectangle{X: float32(ox), Y: float32(oy), Width: texture.CellSize, Height: texture.CellSize},
			rl.Rectangle{X: panelX, Y: panelY, Width: cellPreview, Height: cellPreview},
			rl.Vector2{}, 0, rl.White,
		)
		rl.DrawRectangleLines(int32(panelX), int32(panelY), cellPreview, cellPreview, rl.DarkGray)

		rl.EndDrawing()
	}
}
