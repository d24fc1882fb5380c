package model

// 规范列名。原始导出文件的表头以这些名字为准，
// 版本间有出入的列（周数据、上月参考）在合并时另行用别名匹配。
const (
	ColEmployeeName         = "员工姓名"
	ColTeamName             = "队名"
	ColTotalScore           = "个人总积分"
	ColWeightedTeamScore    = "加权小组总分"
	ColSalesTargetScore     = "销售额目标分"
	ColPaymentTargetScore   = "回款额目标分"
	ColOverdueRecoveryScore = "超期账款追回分"
	ColSalesRankScore       = "销售排名分"
	ColPaymentRankScore     = "回款排名分"
	ColSalesProgressScore   = "销售进步分"
	ColPaymentProgressScore = "回款进步分"
	ColBaseScore            = "基础分"
	ColTeamBonusScore       = "小组加分"
	ColStatPeriod           = "统计月份"

	ColMonthSales              = "本月销售额"
	ColMonthPayment            = "本月回款总额"
	ColMonthOnTimePayment      = "本月正常回款额"
	ColMonthOverduePayment     = "本月超期回款额"
	ColMonthOverdueUnrecovered = "本月超期欠款（未追回）"
	ColPrevSalesRef            = "上月销售额(参考)"
	ColPrevPaymentRef          = "上月回款额(参考)"
	ColSalesTarget             = "本月销售目标"
	ColPaymentTarget           = "本月回款目标"

	ColSalesRank   = "销售排名"
	ColPaymentRank = "回款排名"

	// 部门汇总表的列
	ColDepartmentName = "部门"
)

// 衍生指标的规范名，计算成功后记入列集合供能力判断使用
const (
	ColContribution      = "个人贡献率"
	ColImprovement       = "进步值"
	ColSalesCompletion   = "销售完成率"
	ColPaymentCompletion = "回款完成率"
)

// MaxWeeks 周数据最多 5 周
const MaxWeeks = 5
