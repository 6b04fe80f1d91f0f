package inspectserver

import (
	"math"
	"math/bits"

	"github.com/ptolstoi/warcraftassets/wdl"
	"github.com/ptolstoi/warcraftassets/wmo"
)

// Fields displayed for resolved records.
const (
	areaNameField    = "AreaName"
	terrainDescField = "TerrainDesc"
)

type groupResponse struct {
	Name             string  `json:"name"`
	DescriptiveName  string  `json:"descriptiveName"`
	Flags            uint32  `json:"flags"`
	AreaTableGroupID uint32  `json:"areaTableGroupID"`
	Area             *string `json:"area"`
	SubChunks        int     `json:"subChunks"`
}

type materialResponse struct {
	Textures     [3]string `json:"textures"`
	Shader       uint32    `json:"shader"`
	BlendMode    uint32    `json:"blendMode"`
	GroundTypeID uint32    `json:"groundTypeID"`
	GroundType   *string   `json:"groundType"`
}

type doodadResponse struct {
	Name  string          `json:"name"`
	Flags wmo.DoodadFlags `json:"flags"`
	Scale *float32        `json:"scale"`
}

// finite returns nil for values JSON cannot represent.
func finite(f float32) *float32 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return nil
	}
	return &f
}

type modelResponse struct {
	Name               string             `json:"name"`
	Version            string             `json:"version"`
	State              string             `json:"state"`
	AreaTableID        uint32             `json:"areaTableID"`
	Area               *string            `json:"area"`
	DeclaredGroupCount int                `json:"declaredGroupCount"`
	Groups             []groupResponse    `json:"groups"`
	Materials          []materialResponse `json:"materials"`
	Doodads            []doodadResponse   `json:"doodads"`
}

func (s *Server) newModelResponse(name string, m *wmo.Model) modelResponse {
	res := modelResponse{
		Name:               name,
		Version:            m.Version().String(),
		State:              m.State().String(),
		AreaTableID:        m.Root().Header.AreaTableID,
		Area:               s.resolveField(m.Root().Header.AreaTable(), areaNameField),
		DeclaredGroupCount: m.DeclaredGroupCount(),
		Groups:             []groupResponse{},
		Materials:          []materialResponse{},
		Doodads:            []doodadResponse{},
	}

	for _, g := range m.Groups() {
		res.Groups = append(res.Groups, groupResponse{
			Name:             g.Name,
			DescriptiveName:  g.DescriptiveName,
			Flags:            g.Data.Header.Flags,
			AreaTableGroupID: g.Data.Header.AreaTableGroupID,
			Area:             s.resolveField(g.Data.Header.AreaTableGroup(), areaNameField),
			SubChunks:        len(g.Data.SubChunks),
		})
	}

	for _, mat := range m.Materials() {
		res.Materials = append(res.Materials, materialResponse{
			Textures:     [3]string{mat.Texture0, mat.Texture1, mat.Texture2},
			Shader:       mat.Shader,
			BlendMode:    mat.BlendMode,
			GroundTypeID: mat.GroundTypeID,
			GroundType:   s.resolveField(mat.GroundType(), terrainDescField),
		})
	}

	for _, d := range m.DoodadInstances() {
		res.Doodads = append(res.Doodads, doodadResponse{
			Name:  d.Name,
			Flags: d.Flags(),
			Scale: finite(d.Scale),
		})
	}

	return res
}

type areaResponse struct {
	MinHeight int16 `json:"minHeight"`
	MaxHeight int16 `json:"maxHeight"`
}

type terrainResponse struct {
	Name      string         `json:"name"`
	Version   uint32         `json:"version"`
	Tiles     int            `json:"tiles"`
	Areas     []areaResponse `json:"areas"`
	HoleCount int            `json:"holeCount"`
}

func newTerrainResponse(name string, f *wdl.File) terrainResponse {
	res := terrainResponse{
		Name:    name,
		Version: f.FormatVersion.Value,
		Areas:   []areaResponse{},
	}

	if f.Offsets != nil {
		for _, off := range f.Offsets.Offsets {
			if off != 0 {
				res.Tiles++
			}
		}
	}

	for _, a := range f.Areas {
		lo, hi := a.HeightRange()
		res.Areas = append(res.Areas, areaResponse{MinHeight: lo, MaxHeight: hi})
	}

	for _, h := range f.Holes {
		for _, row := range h.Rows {
			res.HoleCount += bits.OnesCount16(row)
		}
	}

	return res
}
