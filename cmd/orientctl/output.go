package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orient3d/internal/config"
	"github.com/Faultbox/orient3d/pkg/math"
	"github.com/Faultbox/orient3d/pkg/orientation"
)

// number is a float32 that survives JSON encoding when it is not finite.
type number float32

// MarshalJSON writes NaN and infinities as strings.
func (n number) MarshalJSON() ([]byte, error) {
	f := float32(n)
	switch {
	case math32.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math32.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math32.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, float64(f), 'g', -1, 32), nil
}

type matrixOutput struct {
	Kind string     `json:"kind" yaml:"kind"`
	Data [16]number `json:"data" yaml:"data,flow"` // column-major
}

type quatOutput struct {
	W number `json:"w" yaml:"w"`
	X number `json:"x" yaml:"x"`
	Y number `json:"y" yaml:"y"`
	Z number `json:"z" yaml:"z"`
}

type eulerOutput struct {
	Roll  number `json:"roll" yaml:"roll"`
	Pitch number `json:"pitch" yaml:"pitch"`
	Yaw   number `json:"yaw" yaml:"yaw"`
}

type orientationOutput struct {
	Quaternion quatOutput  `json:"quaternion" yaml:"quaternion"`
	Euler      eulerOutput `json:"euler_degrees" yaml:"euler_degrees"`
	Forward    [3]number   `json:"forward" yaml:"forward,flow"`
}

// encode writes v as JSON or YAML.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printMatrix(w io.Writer, out config.OutputConfig, kind string, m math.Mat4) error {
	if out.Format != config.FormatText {
		res := matrixOutput{Kind: kind}
		for i, v := range m.Data() {
			res.Data[i] = number(v)
		}
		return encode(w, out.Format, res)
	}

	fmt.Fprintf(w, "%s:\n", kind)
	width := out.Precision + 6
	for r := 0; r < 4; r++ {
		fmt.Fprint(w, "[")
		for c := 0; c < 4; c++ {
			fmt.Fprintf(w, " %*.*f", width, out.Precision, m.At(r, c))
		}
		fmt.Fprintln(w, " ]")
	}
	return nil
}

func printOrientation(w io.Writer, out config.OutputConfig, q math.Quat, forward math.Vec3) error {
	roll, pitch, yaw := orientation.EulerDegrees(q)

	if out.Format != config.FormatText {
		return encode(w, out.Format, orientationOutput{
			Quaternion: quatOutput{W: number(q.W), X: number(q.X), Y: number(q.Y), Z: number(q.Z)},
			Euler:      eulerOutput{Roll: number(roll), Pitch: number(pitch), Yaw: number(yaw)},
			Forward:    [3]number{number(forward.X), number(forward.Y), number(forward.Z)},
		})
	}

	p := out.Precision
	fmt.Fprintf(w, "quaternion: w=%.*f x=%.*f y=%.*f z=%.*f\n", p, q.W, p, q.X, p, q.Y, p, q.Z)
	fmt.Fprintf(w, "euler (deg): roll=%.*f pitch=%.*f yaw=%.*f\n", p, roll, p, pitch, p, yaw)
	fmt.Fprintf(w, "forward: %v\n", forward)
	return nil
}
