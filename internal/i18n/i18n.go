// Package i18n provides deterministic message lookup for the two locales
// the site publishes: English and Traditional Chinese. Lookups never touch
// the network or the filesystem; unknown locales fall back to English and
// unknown keys echo the key, so rendering stays total.
package i18n

import "golang.org/x/text/language"

// supported lists the published locales. English first: it is the matcher
// fallback and the source of truth for message keys.
var supported = []language.Tag{
	language.English,
	language.TraditionalChinese,
}

var matcher = language.NewMatcher(supported)

// Supported returns the published locales in registration order.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Match resolves an arbitrary locale string ("zh-TW", "en-US", cookie
// values, ...) to one of the supported tags. Unparseable or unsupported
// input resolves to English.
func Match(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// PathPrefix returns the URL prefix pages of the locale are served under.
// English is the site default and lives at the root.
func PathPrefix(loc language.Tag) string {
	if loc == language.TraditionalChinese {
		return "/zh-TW"
	}
	return ""
}

// Lookup returns the message for key in the given locale. Missing
// translations fall back to English; a key absent from both bundles is
// returned verbatim so the gap is visible in rendered output.
func Lookup(loc language.Tag, key string) string {
	if loc == language.TraditionalChinese {
		if msg, ok := zhHant[key]; ok {
			return msg
		}
	}
	if msg, ok := en[key]; ok {
		return msg
	}
	return key
}

var en = map[string]string{
	"site.title":   "Nephio O-RAN Orchestration Agents",
	"site.tagline": "Intelligent orchestration agents for O-RAN deployments on Nephio",

	"nav.home":          "Home",
	"nav.quickstart":    "Quickstart",
	"nav.architecture":  "Architecture",
	"nav.compatibility": "Compatibility",
	"nav.locale.switch": "中文",

	"hero.cta.quickstart":    "Get started",
	"hero.cta.compatibility": "Supported versions",
	"hero.blurb":             "Deploy, validate, and operate O-RAN network functions with a coordinated set of orchestration agents. This site covers installation, architecture, and the certified dependency matrix.",

	"quickstart.title":   "Quickstart",
	"quickstart.intro":   "Bring up the orchestration agents against a running cluster in three steps.",
	"quickstart.step1":   "Install the required toolchain",
	"quickstart.step2":   "Fetch the agent packages",
	"quickstart.step3":   "Deploy and verify",
	"quickstart.verify":  "The deployment is healthy when every agent reports Ready.",
	"quickstart.require": "Requires Go %s and kpt %s.",

	"arch.title": "Architecture",
	"arch.intro": "The platform splits responsibilities across four layers, from intent down to radio units.",
	"arch.smo":   "SMO / orchestration — translates deployment intent into Nephio packages.",
	"arch.ric":   "RIC platform — hosts xApps such as traffic steering and policy control.",
	"arch.cloud": "O-Cloud — cluster infrastructure managed through the O2 interface.",
	"arch.nf":    "Network functions — CU, DU, and RU workloads rolled out per site.",

	"support.title":        "Supported versions",
	"support.intro":        "The documentation and example commands on this site are certified against the following releases.",
	"support.desc.oran":    "Specification release the agent behavior is written against.",
	"support.desc.go":      "Toolchain needed to build the agents and run the example commands.",
	"support.desc.nephio":  "Orchestration platform release the packages target.",
	"support.desc.kpt":     "Package management tool used to fetch and render deployment packages.",
	"support.note.compat":  "Newer releases usually work but are not certified until they appear in this matrix.",
	"support.note.window":  "Each matrix entry is supported for two platform releases; older combinations receive security fixes only.",
	"support.last.updated": "Last updated",

	"compat.lazy.note": "Loading the compatibility matrix…",

	"notfound.title": "Page not found",
	"notfound.body":  "The page you are looking for does not exist or has moved.",
	"notfound.back":  "Back to the homepage",

	"footer.copyright": "© 2025 Nephio O-RAN agents documentation",

	"lazy.loading": "Loading content",
}

var zhHant = map[string]string{
	"site.title":   "Nephio O-RAN 協調代理",
	"site.tagline": "為 Nephio 上的 O-RAN 部署提供智慧協調代理",

	"nav.home":          "首頁",
	"nav.quickstart":    "快速入門",
	"nav.architecture":  "架構",
	"nav.compatibility": "相容性",
	"nav.locale.switch": "English",

	"hero.cta.quickstart":    "開始使用",
	"hero.cta.compatibility": "支援版本",
	"hero.blurb":             "透過一組協調代理部署、驗證並維運 O-RAN 網路功能。本網站涵蓋安裝、架構與認證的相依版本矩陣。",

	"quickstart.title":   "快速入門",
	"quickstart.intro":   "依照三個步驟，在執行中的叢集上啟動協調代理。",
	"quickstart.step1":   "安裝必要的工具鏈",
	"quickstart.step2":   "取得代理套件",
	"quickstart.step3":   "部署並驗證",
	"quickstart.verify":  "當每個代理都回報 Ready 時，部署即為正常。",
	"quickstart.require": "需要 Go %s 與 kpt %s。",

	"arch.title": "架構",
	"arch.intro": "平台將職責劃分為四層，從意圖一路到無線電單元。",
	"arch.smo":   "SMO / 協調層 — 將部署意圖轉換為 Nephio 套件。",
	"arch.ric":   "RIC 平台 — 承載流量導引、策略控制等 xApp。",
	"arch.cloud": "O-Cloud — 透過 O2 介面管理的叢集基礎設施。",
	"arch.nf":    "網路功能 — 依站點推出的 CU、DU 與 RU 工作負載。",

	"support.title":        "支援版本",
	"support.intro":        "本網站的文件與範例指令皆依下列版本認證。",
	"support.desc.oran":    "代理行為所依據的規範版本。",
	"support.desc.go":      "建置代理與執行範例指令所需的工具鏈。",
	"support.desc.nephio":  "套件所針對的協調平台版本。",
	"support.desc.kpt":     "用於取得並渲染部署套件的套件管理工具。",
	"support.note.compat":  "較新的版本通常可用，但在列入此矩陣前不屬於認證範圍。",
	"support.note.window":  "矩陣中的每個項目支援兩個平台版本；更舊的組合僅提供安全性修補。",
	"support.last.updated": "最後更新",

	"compat.lazy.note": "正在載入相容性矩陣…",

	"notfound.title": "找不到頁面",
	"notfound.body":  "您要找的頁面不存在或已搬移。",
	"notfound.back":  "回到首頁",

	"footer.copyright": "© 2025 Nephio O-RAN 代理文件",

	"lazy.loading": "內容載入中",
}
