package export

import (
	"fmt"
	"io"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// PointCloud collects the world-space vertices of every draw of the frame,
// in draw order. Each point carries its vertex colour packed as 0x00RRGGBB.
func PointCloud(frame snowscene.Frame, vertices []mesh.Vertex) (*pc.PointCloud, error) {
	points := 0
	for _, d := range frame.Draws {
		points += len(d.Range.Slice(vertices))
	}

	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z", "rgb"},
			Size:    []int{4, 4, 4, 4},
			Type:    []string{"F", "F", "F", "U"},
			Count:   []int{1, 1, 1, 1},
			Width:   points,
			Height:  1,
		},
		Points: points,
	}
	pp.Data = make([]byte, points*pp.Stride())
	if points == 0 {
		return pp, nil
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("export: point cloud: %w", err)
	}
	itRGB, err := pp.Uint32Iterator("rgb")
	if err != nil {
		return nil, fmt.Errorf("export: point cloud: %w", err)
	}

	for _, d := range frame.Draws {
		for _, v := range d.Range.Slice(vertices) {
			p := d.World.Mul4x1(v.Position.Vec4(1))
			it.SetVec3(mat.Vec3{float32(p.X()), float32(p.Y()), float32(p.Z())})
			itRGB.SetUint32(packRGB(v.Color[0], v.Color[1], v.Color[2]))
			it.Incr()
			itRGB.Incr()
		}
	}

	return pp, nil
}

// WritePCD writes the frame's point cloud to w in PCD format
func WritePCD(w io.Writer, frame snowscene.Frame) error {
	pp, err := PointCloud(frame, mesh.Cube())
	if err != nil {
		return err
	}
	if err := pc.Marshal(pp, w); err != nil {
		return fmt.Errorf("export: marshal pcd: %w", err)
	}
	return nil
}

func packRGB(r, g, b float64) uint32 {
	return uint32(clamp8(r*255))<<16 | uint32(clamp8(g*255))<<8 | uint32(clamp8(b*255))
}
