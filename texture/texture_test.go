package texture

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(7)
	b := Generate(7)
	if a.Pix != b.Pix {
		t.Error("same seed produced different atlases")
	}

	c := Generate(8)
	if a.Pix == c.Pix {
		t.Error("different seeds produced identical atlases")
	}
}

func TestPuffShape(t *testing.T) {
	a := Generate(1)

	for row := range Cells {
		for col := range Cells {
			x0, y0 := CellOrigin(col, row)

			// Corners lie outside the puff radius and the border is never filtered.
			if v := a.At(x0, y0); v != 0 {
				t.Errorf("cell (%d,%d) corner = %d, want 0", col, row, v)
			}
			centre := a.At(x0+15, y0+15)
			edge := a.At(x0+15, y0+1)
			if centre <= edge {
				t.Errorf("cell (%d,%d) centre %d not brighter than edge %d", col, row, centre, edge)
			}
		}
	}
}

func TestLastCellBlendsFirst(t *testing.T) {
	a := Generate(3)
	x7, y7 := CellOrigin(Cells-1, Cells-1)

	// The last cell sits between the first cell and the second-to-last cell.
	x6, y6 := CellOrigin(Cells-2, Cells-1)
	for i := range CellSize {
		for j := range CellSize {
			first := int(a.At(j, i))
			prev := int(a.At(x6+j, y6+i))
			last := int(a.At(x7+j, y7+i))
			if want := (first + prev) / 2; last != want {
				t.Fatalf("last cell (%d,%d) = %d, want %d", j, i, last, want)
			}
		}
	}
}

func TestRGBA(t *testing.T) {
	a := Generate(1)
	px := a.RGBA()
	if len(px) != Size*Size {
		t.Fatalf("len = %d, want %d", len(px), Size*Size)
	}
	i := 15*Size + 15
	if px[i].A != a.Pix[i] || px[i].R != a.Pix[i] {
		t.Errorf("pixel %d = %+v, want luminance %d", i, px[i], a.Pix[i])
	}
}
