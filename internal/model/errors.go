package model

import "errors"

// 导入阶段的致命错误。只影响当前文件，之前载入的周期与历史快照不受波及。
var (
	// ErrSourceReadFailure 文件无法读取或不是合法工作簿
	ErrSourceReadFailure = errors.New("数据文件无法读取")

	// ErrMissingRequiredColumn 主表缺少队名列
	ErrMissingRequiredColumn = errors.New("数据文件中缺少'队名'列")

	// ErrEmptyValidRowSet 主表存在但所有记录的队名都为空
	ErrEmptyValidRowSet = errors.New("所有记录的队名都为空")
)
