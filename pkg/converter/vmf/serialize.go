// Package vmf serializes parsed brush geometry into Source 1 .vmf
// documents ready for the Source 2 resource compiler.
package vmf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter"
	"github.com/TarekLP/Tareks-HalfLifeAlyx-Addons/pkg/converter/format"
)

const (
	// ScaleFactor converts Quake units to Source units. 0.75 targets
	// the final Alyx map size.
	ScaleFactor = 0.75

	// coordPrecision is the number of decimal places written for every
	// plane coordinate.
	coordPrecision = 6

	// materialNamespace prefixes every face material reference; Hammer
	// resolves a .vmat under it.
	materialNamespace = "materials/"
)

// Generate serializes brushes into a .vmf document. The caller must
// filter out empty brushes. An empty slice still yields a valid
// document holding only the fixed scaffold blocks.
func Generate(brushes []converter.Brush) string {
	writer := &bytes.Buffer{}
	ids := newIDAllocator()

	serializeVersionInfo(writer)
	serializeWorld(writer, brushes, ids)
	serializeSpawnEntity(writer, ids)
	serializeTrailer(writer)

	return writer.String()
}

// transformPoint maps a Quake Z-up point into the Source Y-up frame and
// applies the unit scale: (x, y, z) -> (x*S, z*S, -y*S).
func transformPoint(p converter.Point) converter.Point {
	return converter.Point{
		X: p.X * ScaleFactor,
		Y: p.Z * ScaleFactor,
		Z: -p.Y * ScaleFactor,
	}
}

func serializeVersionInfo(w io.Writer) {
	fmt.Fprintln(w, "versioninfo")
	fmt.Fprintln(w, "{")
	fmt.Fprintln(w, `    "mapversion" "1"`)
	fmt.Fprintln(w, `    "editorversion" "400"`)
	fmt.Fprintln(w, `    "editorbuild" "8000"`)
	fmt.Fprintln(w, `    "formatversion" "1"`)
	fmt.Fprintln(w, `    "prefab" "0"`)
	fmt.Fprintln(w, "}")
}

func serializeWorld(w io.Writer, brushes []converter.Brush, ids *idAllocator) {
	fmt.Fprintln(w, "world")
	fmt.Fprintln(w, "{")
	fmt.Fprintln(w, `    "id" "1"`)
	fmt.Fprintln(w, `    "mapversion" "1"`)
	fmt.Fprintln(w, `    "classname" "worldspawn"`)

	for _, brush := range brushes {
		serializeSolid(w, brush, ids)
	}

	serializeEditor(w, 4, "255 0 0")
	fmt.Fprintln(w, "}")
}

func serializeSolid(w io.Writer, brush converter.Brush, ids *idAllocator) {
	fmt.Fprintln(w, "    solid")
	fmt.Fprintln(w, "    {")
	fmt.Fprintf(w, "        \"id\" \"%d\"\n", ids.alloc())

	for _, plane := range brush.Planes {
		serializeSide(w, plane, ids.alloc())
	}

	serializeEditor(w, 8, "255 0 0")
	fmt.Fprintln(w, "    }")
}

func serializeSide(w io.Writer, plane converter.Plane, id int) {
	fmt.Fprintln(w, "        side")
	fmt.Fprintln(w, "        {")
	fmt.Fprintf(w, "            \"id\" \"%d\"\n", id)
	fmt.Fprintf(w, "            \"plane\" \"%s %s %s\"\n",
		pointString(transformPoint(plane.Points[0])),
		pointString(transformPoint(plane.Points[1])),
		pointString(transformPoint(plane.Points[2])),
	)
	fmt.Fprintf(w, "            \"material\" \"%s%s\"\n",
		materialNamespace, strings.ToUpper(plane.Texture))
	fmt.Fprintln(w, `            "uaxis" "[1 0 0 0] 0.0625"`)
	fmt.Fprintln(w, `            "vaxis" "[0 1 0 0] 0.0625"`)
	fmt.Fprintln(w, `            "rotation" "0"`)
	fmt.Fprintln(w, `            "lightmapscale" "16"`)
	fmt.Fprintln(w, `            "smoothing_groups" "0"`)
	fmt.Fprintln(w, "        }")
}

func serializeSpawnEntity(w io.Writer, ids *idAllocator) {
	fmt.Fprintln(w, "entity")
	fmt.Fprintln(w, "{")
	fmt.Fprintf(w, "    \"id\" \"%d\"\n", ids.alloc())
	fmt.Fprintln(w, `    "classname" "info_player_start"`)
	fmt.Fprintln(w, `    "origin" "0 0 64"`)
	fmt.Fprintln(w, `    "angles" "0 0 0"`)
	serializeEditor(w, 4, "255 255 0")
	fmt.Fprintln(w, "}")
}

func serializeTrailer(w io.Writer) {
	fmt.Fprintln(w, "hidden")
	fmt.Fprintln(w, "{")
	fmt.Fprintln(w, "}")
}

func serializeEditor(w io.Writer, indent int, color string) {
	pad := strings.Repeat(" ", indent)
	fmt.Fprintf(w, "%s\"editor\"\n", pad)
	fmt.Fprintf(w, "%s{\n", pad)
	fmt.Fprintf(w, "%s    \"color\" \"%s\"\n", pad, color)
	fmt.Fprintf(w, "%s    \"visgroupshown\" \"1\"\n", pad)
	fmt.Fprintf(w, "%s    \"visgroupautoshown\" \"1\"\n", pad)
	fmt.Fprintf(w, "%s    \"logicalpos\" \"[0 0]\"\n", pad)
	fmt.Fprintf(w, "%s}\n", pad)
}

func pointString(p converter.Point) string {
	return fmt.Sprintf("(%s %s %s)",
		format.FloatToFixedPrecisionString(p.X, coordPrecision),
		format.FloatToFixedPrecisionString(p.Y, coordPrecision),
		format.FloatToFixedPrecisionString(p.Z, coordPrecision),
	)
}
