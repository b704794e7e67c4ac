// 指示: miu200521358
package vrm

import (
	"encoding/binary"
	"encoding/json"

	"github.com/miu200521358/mu_vrmik/pkg/adapter/io_common"
	"github.com/miu200521358/mu_vrmik/pkg/domain/mmath"
)

const (
	glbHeaderLength   = 12
	glbChunkHeadSize  = 8
	glbMagic          = 0x46546C67
	glbJSONChunkType  = 0x4E4F534A
	glbMinValidLength = glbHeaderLength + glbChunkHeadSize
)

// gltfDocument は骨格読込に必要なglTFトップレベル要素を表す。
type gltfDocument struct {
	Asset          gltfAsset                  `json:"asset"`
	ExtensionsUsed []string                   `json:"extensionsUsed"`
	Nodes          []gltfNode                 `json:"nodes"`
	Extensions     map[string]json.RawMessage `json:"extensions"`
}

// gltfAsset はglTF asset要素を表す。
type gltfAsset struct {
	Version   string `json:"version"`
	Generator string `json:"generator"`
}

// gltfNode はglTF node要素を表す。
type gltfNode struct {
	Name        string    `json:"name"`
	Children    []int     `json:"children"`
	Matrix      []float64 `json:"matrix"`
	Translation []float64 `json:"translation"`
	Rotation    []float64 `json:"rotation"`
	Scale       []float64 `json:"scale"`
}

// parseGLBJSONChunk はGLBバイナリからJSONチャンクを取り出す。
func parseGLBJSONChunk(b []byte) ([]byte, error) {
	if len(b) < glbMinValidLength {
		return nil, io_common.NewIoParseFailed("VRMヘッダが不足しています", nil)
	}
	magic := binary.LittleEndian.Uint32(b[0:4])
	if magic != glbMagic {
		return nil, io_common.NewIoParseFailed("GLBマジックが不正です", nil)
	}
	version := binary.LittleEndian.Uint32(b[4:8])
	if version != 2 {
		return nil, io_common.NewIoFormatNotSupported("GLBバージョンが未対応です: %d", nil, version)
	}
	totalLength := binary.LittleEndian.Uint32(b[8:12])
	if totalLength > uint32(len(b)) {
		return nil, io_common.NewIoParseFailed("GLB全体長が不正です", nil)
	}

	offset := glbHeaderLength
	for offset+glbChunkHeadSize <= len(b) {
		chunkLength := int(binary.LittleEndian.Uint32(b[offset : offset+4]))
		chunkType := binary.LittleEndian.Uint32(b[offset+4 : offset+8])
		chunkStart := offset + glbChunkHeadSize
		chunkEnd := chunkStart + chunkLength
		if chunkLength < 0 || chunkEnd > len(b) {
			return nil, io_common.NewIoParseFailed("GLBチャンク長が不正です", nil)
		}
		if chunkType == glbJSONChunkType {
			return b[chunkStart:chunkEnd], nil
		}
		offset = chunkEnd
	}
	return nil, io_common.NewIoParseFailed("GLB JSONチャンクが見つかりません", nil)
}

// buildNodeParentIndexes はnode配列から親インデックス配列を生成する。
func buildNodeParentIndexes(nodes []gltfNode) ([]int, error) {
	parentIndexes := make([]int, len(nodes))
	for i := range parentIndexes {
		parentIndexes[i] = -1
	}
	for parentIndex, node := range nodes {
		for _, childIndex := range node.Children {
			if childIndex < 0 || childIndex >= len(nodes) {
				return nil, io_common.NewIoParseFailed("node.children のindexが不正です: %d", nil, childIndex)
			}
			if parentIndexes[childIndex] == -1 {
				parentIndexes[childIndex] = parentIndex
			}
		}
	}
	return parentIndexes, nil
}

// nodeTransform はnode要素の平行移動、回転、拡大率を表す。
type nodeTransform struct {
	translation mmath.Vec3
	rotation    mmath.Quaternion
	scale       mmath.Vec3
}

// parseNodeTransform はnode要素からローカル変換を取り出す。matrix 指定は分解する。
func parseNodeTransform(node gltfNode) (nodeTransform, error) {
	if len(node.Matrix) > 0 {
		return decomposeNodeMatrix(node.Matrix)
	}
	translation, err := parseVec3(node.Translation, mmath.ZERO_VEC3, "node.translation")
	if err != nil {
		return nodeTransform{}, err
	}
	scale, err := parseVec3(node.Scale, mmath.NewVec3(1, 1, 1), "node.scale")
	if err != nil {
		return nodeTransform{}, err
	}
	rotation, err := parseQuaternion(node.Rotation)
	if err != nil {
		return nodeTransform{}, err
	}
	return nodeTransform{translation: translation, rotation: rotation, scale: scale}, nil
}

// decomposeNodeMatrix は列優先の4x4行列を平行移動、回転、拡大率へ分解する。
func decomposeNodeMatrix(values []float64) (nodeTransform, error) {
	if len(values) != 16 {
		return nodeTransform{}, io_common.NewIoParseFailed("node.matrix の要素数が不正です: %d", nil, len(values))
	}
	translation := mmath.NewVec3(values[12], values[13], values[14])
	columns := [3]mmath.Vec3{
		mmath.NewVec3(values[0], values[1], values[2]),
		mmath.NewVec3(values[4], values[5], values[6]),
		mmath.NewVec3(values[8], values[9], values[10]),
	}
	var scale [3]float64
	var rotationMatrix [3][3]float64
	for col, column := range columns {
		scale[col] = column.Length()
		unit, ok := column.TryNormalized()
		if !ok {
			return nodeTransform{}, io_common.NewIoParseFailed("node.matrix の拡大率が0です", nil)
		}
		rotationMatrix[0][col] = unit.X
		rotationMatrix[1][col] = unit.Y
		rotationMatrix[2][col] = unit.Z
	}
	return nodeTransform{
		translation: translation,
		rotation:    mmath.NewQuaternionFromRotationMatrix(rotationMatrix),
		scale:       mmath.NewVec3(scale[0], scale[1], scale[2]),
	}, nil
}

// parseVec3 はスライスをVec3へ変換する。
func parseVec3(values []float64, defaultValue mmath.Vec3, label string) (mmath.Vec3, error) {
	if len(values) == 0 {
		return defaultValue, nil
	}
	if len(values) != 3 {
		return mmath.ZERO_VEC3, io_common.NewIoParseFailed("%s の要素数が不正です: %d", nil, label, len(values))
	}
	return mmath.NewVec3(values[0], values[1], values[2]), nil
}

// parseQuaternion はスライスをQuaternionへ変換する。
func parseQuaternion(values []float64) (mmath.Quaternion, error) {
	if len(values) == 0 {
		return mmath.NewQuaternion(), nil
	}
	if len(values) != 4 {
		return mmath.NewQuaternion(), io_common.NewIoParseFailed("node.rotation の要素数が不正です: %d", nil, len(values))
	}
	return mmath.NewQuaternionByValues(values[0], values[1], values[2], values[3]).Normalized(), nil
}
