package main

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/spf13/cobra"

	"github.com/alex-fu27/maths/pkg/scalar"
	"github.com/alex-fu27/maths/pkg/vec"
)

func newBoundsCmd() *cobra.Command {
	var gridRes int

	cmd := &cobra.Command{
		Use:   "bounds <model.glb|model.gltf>",
		Short: "Report bounding box and Morton statistics for a glTF model",
		Long: `Report the axis-aligned bounding box of a glTF model's vertices,
plus the Morton (Z-order) code range of the vertices quantized onto a
power-of-two grid in the XY plane.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBounds(args[0], gridRes)
		},
	}

	cmd.Flags().IntVar(&gridRes, "grid", 1024, "Quantization grid cells per axis (rounded up to a power of two)")

	return cmd
}

func runBounds(path string, gridRes int) error {
	positions, err := loadPositions(path)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("%s: no vertex positions", path)
	}
	if gridRes < 1 || gridRes > 1<<30 {
		return fmt.Errorf("grid resolution must be in [1, 2^30], got %d", gridRes)
	}

	lo, hi := positions[0], positions[0]
	for _, p := range positions[1:] {
		lo, hi = vec.UpdateMinMax3(p, lo, hi)
	}

	center := lo.Add(hi).Scale(0.5)
	size := hi.Sub(lo)

	fmt.Printf("vertices: %d\n", len(positions))
	fmt.Printf("min:      %v\n", lo)
	fmt.Printf("max:      %v\n", hi)
	fmt.Printf("center:   %v\n", center)
	fmt.Printf("size:     %v\n", size)

	// Quantize XY onto a power-of-two grid and report the Z-order range.
	cells := scalar.RoundUpToPowerOfTwo(uint32(gridRes))
	maxCell := float64(cells - 1)
	span := hi.Sub(lo)

	quantize := func(v, lo, span float64) uint32 {
		if span == 0 {
			return 0
		}
		return uint32(scalar.Clamp((v-lo)/span*maxCell, 0, maxCell))
	}

	codeLo := uint64(math.MaxUint64)
	codeHi := uint64(0)
	for _, p := range positions {
		cx := quantize(p.X(), lo.X(), span.X())
		cy := quantize(p.Y(), lo.Y(), span.Y())
		code := scalar.MortonEncode(cx, cy)
		codeLo = scalar.Min(codeLo, code)
		codeHi = scalar.Max(codeHi, code)
	}

	fmt.Printf("grid:     %dx%d cells\n", cells, cells)
	fmt.Printf("morton:   [%d, %d]\n", codeLo, codeHi)

	return nil
}

// loadPositions decodes every POSITION accessor in the document.
func loadPositions(path string) ([]vec.Vec3[float64], error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	var positions []vec.Vec3[float64]
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			ps, err := readVec3Accessor(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}
			positions = append(positions, ps...)
		}
	}
	return positions, nil
}

// readVec3Accessor reads VEC3 float data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]vec.Vec3[float64], error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, fmt.Errorf("external buffers not supported")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}

	result := make([]vec.Vec3[float64], accessor.Count)
	for i := range accessor.Count {
		offset := start + i*stride
		var f [3]float32
		for j := range 3 {
			f[j] = readFloat32(buffer.Data[offset+j*4:])
		}
		result[i] = vec.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
