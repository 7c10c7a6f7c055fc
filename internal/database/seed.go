package database

import (
	"time"

	"portal/config"
	"portal/internal/domain"
	"portal/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed populates empty tables with the default portal content. Each table is
// checked independently so a partially seeded database is completed without
// duplicating rows.
func Seed(db *gorm.DB, cfg *config.SeedConfig, log *zap.Logger) error {
	now := time.Now()
	steps := []struct {
		name string
		fn   func(*gorm.DB, time.Time) error
	}{
		{"company_info", seedCompany},
		{"products", seedProducts},
		{"news", seedNews},
		{"admin_users", func(tx *gorm.DB, now time.Time) error { return seedAdmin(tx, cfg, now) }},
	}
	for _, s := range steps {
		if err := s.fn(db, now); err != nil {
			return err
		}
		log.Debug("seed step done", zap.String("table", s.name))
	}
	return nil
}

func isEmpty(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

func seedCompany(db *gorm.DB, now time.Time) error {
	empty, err := isEmpty(db, &models.CompanyInfo{})
	if err != nil || !empty {
		return err
	}
	year, employees := 2014, 50
	return db.Create(&models.CompanyInfo{
		Name:            "宁波数字科技有限公司",
		Description:     "专业的数字化转型服务提供商，为企业提供全方位的技术解决方案和咨询服务",
		PhoneNumber:     "+86 574-8888-8888",
		Email:           "contact@ningbo-tech.com",
		Address:         "浙江省宁波市高新区创新路123号",
		BusinessScope:   "软件开发、系统集成、技术咨询、数字化转型",
		EstablishedYear: &year,
		EmployeeCount:   &employees,
		IsPrimary:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}).Error
}

func seedProducts(db *gorm.DB, now time.Time) error {
	empty, err := isEmpty(db, &models.Product{})
	if err != nil || !empty {
		return err
	}
	products := []models.Product{
		{Name: "企业官网开发", Description: "专业的企业官网设计开发服务", Category: "网站开发", Price: 50000, Features: "响应式设计,SEO优化,高性能,安全可靠"},
		{Name: "移动应用开发", Description: "iOS、Android原生应用及跨平台应用开发", Category: "移动应用", Price: 80000, Features: "原生体验,跨平台兼容,性能优化,用户友好"},
		{Name: "企业管理系统", Description: "ERP、CRM、OA等企业管理系统定制开发", Category: "系统集成", Price: 120000, Features: "模块化设计,流程自动化,数据分析,权限管理"},
		{Name: "电商平台解决方案", Description: "完整的电商平台搭建，包含支付、物流等功能", Category: "电商平台", Price: 150000, Features: "多端同步,支付集成,订单管理,数据分析"},
		{Name: "云端部署服务", Description: "云服务器部署、容器化、微服务架构设计", Category: "云服务", Price: 30000, Features: "弹性扩展,高可用性,自动化部署,监控运维"},
		{Name: "数据分析平台", Description: "大数据分析、商业智能、数据可视化解决方案", Category: "数据分析", Price: 100000, Features: "实时分析,可视化报表,智能决策,预测分析"},
	}
	for i := range products {
		products[i].IsActive = true
		products[i].SortOrder = i + 1
		products[i].CreatedAt = now
		products[i].UpdatedAt = now
	}
	return db.Create(&products).Error
}

func seedNews(db *gorm.DB, now time.Time) error {
	empty, err := isEmpty(db, &models.News{})
	if err != nil || !empty {
		return err
	}
	articles := []models.News{
		{Title: "数字化转型新趋势：AI技术在企业管理中的应用", Excerpt: "探讨人工智能技术如何助力企业实现智能化管理，提升运营效率和决策质量", Content: "随着人工智能技术的快速发展，越来越多的企业开始将AI技术应用到日常管理中...", Category: "技术前沿", Author: "张三", ReadTime: "5分钟"},
		{Title: "云原生架构：企业数字化基础设施的演进", Excerpt: "解析云原生技术如何重塑企业IT架构，为数字化转型提供更强大的技术支撑", Content: "云原生架构作为现代企业IT基础设施的重要组成部分，正在成为数字化转型的关键技术...", Category: "云计算", Author: "李四", ReadTime: "8分钟"},
		{Title: "2024年企业数字化转型报告发布", Excerpt: "最新行业报告显示，数字化转型已成为企业发展的核心战略，成功率大幅提升", Content: "根据最新发布的《2024年企业数字化转型报告》，今年企业数字化转型的成功率达到75%...", Category: "行业报告", Author: "王五", ReadTime: "6分钟"},
		{Title: "微服务架构在大型企业中的实践经验", Excerpt: "分享某大型制造企业成功实施微服务架构的完整过程和关键经验总结", Content: "微服务架构作为现代软件架构的重要模式，在大型企业中的应用越来越广泛...", Category: "案例分析", Author: "赵六", ReadTime: "7分钟"},
		{Title: "数据安全新规范：企业如何应对数据合规挑战", Excerpt: "深入分析最新数据安全法规对企业的影响，提供实用的合规建议和解决方案", Content: "随着《数据安全法》和《个人信息保护法》的正式实施，企业面临着更加严格的数据合规要求...", Category: "数据安全", Author: "孙七", ReadTime: "4分钟"},
		{Title: "低代码平台助力中小企业快速数字化", Excerpt: "介绍低代码开发平台如何帮助中小企业以更低成本、更快速度实现数字化转型", Content: "低代码开发平台作为一种新兴的软件开发方式，正在为中小企业的数字化转型提供新的可能...", Category: "解决方案", Author: "周八", ReadTime: "6分钟"},
	}
	for i := range articles {
		// spread publish dates over the last month, newest first
		published := now.AddDate(0, 0, -5*i)
		articles[i].IsPublished = true
		articles[i].PublishedAt = &published
		articles[i].CreatedAt = now
		articles[i].UpdatedAt = now
	}
	return db.Create(&articles).Error
}

func seedAdmin(db *gorm.DB, cfg *config.SeedConfig, now time.Time) error {
	empty, err := isEmpty(db, &models.AdminUser{})
	if err != nil || !empty {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.AdminUser{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FullName:  cfg.AdminFullName,
		Role:      domain.RoleSuperAdmin,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}
