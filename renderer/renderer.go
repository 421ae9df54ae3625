package renderer

import "github.com/AngelaFabregues/CheatsheetImagesGenerator/layout"

// Renderer 将一页布局结果输出为最终图像。
// Render 返回编码后的 PNG 数据以及可能的错误。
type Renderer interface {
	Render(page *layout.Page) ([]byte, error)
}
