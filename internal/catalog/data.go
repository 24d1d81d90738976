// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package catalog

var brand = Brand{
	Name:          "CloudScale",
	Tagline:       "Enterprise cloud storage comparison and recommendations",
	HeroTitle:     "Petabyte-Scale Storage",
	HeroSubtitle:  "Comparison Guide",
	HeroLead:      "A comprehensive side-by-side analysis of AWS, Azure, and Google Cloud storage solutions for long-term archives, real-time analytics, and high-performance computing workloads.",
	CallToAction:  "Start Comparison",
	CallToTarget:  "aws",
	ScenarioTitle: "Use Case Scenarios",
	ScenarioLead:  "Which cloud provider fits your specific requirements?",
	TierTitle:     "Storage Tiers At-a-Glance",
	TierLead:      "Quick reference for available storage classes across providers",
	PickTitle:     "Quick Recommendations",
	PickLead:      "Our expert picks for common enterprise scenarios",
	CostTitle:     "Cost Optimization Signals",
	CostLead:      "Key factors that drive storage costs across all providers",
}

var providers = []Provider{
	{
		ID:             "aws",
		Name:           "Amazon Web Services",
		Icon:           IconCloud,
		PrimaryStorage: "Amazon S3 (object storage) with storage classes from Standard to Glacier Deep Archive",
		Features: []string{
			"11 9's durability, cross-region replication",
			"Object lock and lifecycle policies",
			"S3 Intelligent-Tiering with auto-optimization",
			"S3 Express One Zone for ultra-low latency",
		},
		Analytics: "Serverless SQL via Amazon Athena; managed Spark/Presto on EMR; Redshift Spectrum for in-place queries; governance with Lake Formation/Glue",
		Pricing:   "Per-GB-month by class; request/operation charges; data transfer costs; minimum storage durations on IA/Glacier classes",
		Strengths: "Most mature object ecosystem with rich query-in-place options and extensive third-party integrations",
		Accent:    AccentOrange,
	},
	{
		ID:             "azure",
		Name:           "Microsoft Azure",
		Icon:           IconServer,
		PrimaryStorage: "Azure Blob Storage / Azure Data Lake Storage Gen2 (ADLS Gen2) with hierarchical namespace",
		Features: []string{
			"Hierarchical namespace (HNS) for file-system semantics",
			"Deep Microsoft Entra ID integration",
			"POSIX-like ACLs and RBAC",
			"Hot/Cool/Cold online tiers plus Archive",
		},
		Analytics: "Synapse Analytics serverless SQL; Azure Databricks with Delta Lake; Fabric OneLake for unified analytics",
		Pricing:   "Per-GB-month by tier; operations priced per 10k transactions; data egress charges; rehydration costs for Archive",
		Strengths: "Enterprise identity/compliance integration with tight coupling to Microsoft data stack",
		Accent:    AccentBlue,
	},
	{
		ID:             "gcp",
		Name:           "Google Cloud",
		Icon:           IconDatabase,
		PrimaryStorage: "Google Cloud Storage (GCS) with Standard, Nearline, Coldline, Archive, and Autoclass",
		Features: []string{
			"Archive tier with millisecond access",
			"Autoclass for automatic tiering",
			"Regional/dual-region/multi-region placement",
			"Strong integration with BigQuery ecosystem",
		},
		Analytics: "BigQuery with external tables and BigLake; Dataproc and Dataflow; Dataplex Universal Catalog for governance",
		Pricing:   "Per-GB-month by class; Class A/B operations pricing; minimum storage durations; internet egress costs",
		Strengths: "Best-in-class serverless analytics with strong governance for multi-engine lakehouse patterns",
		Accent:    AccentGreen,
	},
}

var scenarios = []Scenario{
	{
		Title:  "Long-term Archiving",
		Icon:   IconServer,
		Accent: AccentPurple,
		Recommendations: []Recommendation{
			{Provider: "AWS", Solution: "S3 Glacier Deep Archive or Flexible Retrieval", Benefit: "Excellent when already on S3 and can tolerate restore time"},
			{Provider: "Azure", Solution: "Archive tier in Blob/ADLS Gen2", Benefit: "Strong for Azure-first analytics and HNS requirements"},
			{Provider: "GCP", Solution: "Archive class with millisecond access", Benefit: "Cold pricing with occasional fast reads capability"},
		},
	},
	{
		Title:  "Real-time Analytics",
		Icon:   IconZap,
		Accent: AccentOrange,
		Recommendations: []Recommendation{
			{Provider: "AWS", Solution: "S3 + Athena/Redshift Spectrum + Glue", Benefit: "Great for diverse formats and pay-per-query model"},
			{Provider: "Azure", Solution: "ADLS Gen2 + Synapse + Databricks", Benefit: "Strong for Microsoft-centric analytics teams"},
			{Provider: "GCP", Solution: "GCS + BigQuery + BigLake + Dataplex", Benefit: "Excellent for SQL-first, serverless analytics at scale"},
		},
	},
	{
		Title:  "High-Performance Computing",
		Icon:   IconDatabase,
		Accent: AccentGreen,
		Recommendations: []Recommendation{
			{Provider: "AWS", Solution: "S3 + FSx for Lustre", Benefit: "POSIX, sub-ms latencies, hundreds of GB/s throughput"},
			{Provider: "Azure", Solution: "Azure NetApp Files + HPC Cache", Benefit: "Good for CAD/EDA, media, genomics on Azure compute"},
			{Provider: "GCP", Solution: "Parallelstore + GCS", Benefit: "Ultra-high-throughput NFS alongside BigQuery integration"},
		},
	},
}

var tiers = []TierRow{
	{
		Provider: "AWS S3",
		Tiers:    []string{"Standard", "Intelligent-Tiering", "Standard-IA", "One Zone-IA", "Glacier Instant", "Glacier Flexible", "Glacier Deep Archive"},
		Note:     "Choose based on access frequency and restore latency",
	},
	{
		Provider: "Azure Blob/ADLS Gen2",
		Tiers:    []string{"Hot", "Cool", "Cold", "Archive"},
		Note:     "Cold is online (cheaper than Cool), Archive requires rehydration",
	},
	{
		Provider: "Google Cloud Storage",
		Tiers:    []string{"Standard", "Nearline", "Coldline", "Archive", "Autoclass"},
		Note:     "Archive is millisecond-accessible (higher access costs, 365-day min)",
	},
}

var picks = []Pick{
	{
		Title:   "Regulated Archives + Microsoft Integration",
		Body:    "Azure ADLS Gen2 + Archive with Synapse/Fabric on top. Get HNS, AD-integrated ACLs, and smooth Power BI flows.",
		BestFor: "Enterprise governance",
		Accent:  AccentBlue,
	},
	{
		Title:   "Massive Data Lake + Open Formats",
		Body:    "GCP GCS + BigLake + BigQuery + Dataplex for unified lakehouse. Use Autoclass for varying access patterns.",
		BestFor: "Analytics-first architecture",
		Accent:  AccentGreen,
	},
	{
		Title:   "Broadest Ecosystem + Flexible Warehousing",
		Body:    "AWS S3 with Athena/Redshift Spectrum, lifecycle to Glacier classes for aging data.",
		BestFor: "Multi-tool environments",
		Accent:  AccentOrange,
	},
	{
		Title:   "HPC + Simulation Workloads",
		Body:    "AWS FSx for Lustre ↔ S3, Azure NetApp Files/HPC Cache, or GCP Parallelstore for high-throughput needs.",
		BestFor: "Compute-intensive workloads",
		Accent:  AccentPurple,
	},
}

var costTips = []CostTip{
	{
		Title:  "Storage Class Selection",
		Icon:   IconDollar,
		Accent: AccentGreen,
		Body:   "Choose storage classes based on access patterns. Consider minimum storage duration penalties on colder classes.",
	},
	{
		Title:  "Operations Pricing",
		Icon:   IconZap,
		Accent: AccentBlue,
		Body:   "Monitor PUT/GET/LIST operations. AWS and GCP price per request; Azure charges per 10k operations.",
	},
	{
		Title:  "Data Egress",
		Icon:   IconArrow,
		Accent: AccentRed,
		Body:   "Often the hidden cost driver. Check network pricing for your regions and plan data movement carefully.",
	},
}

var proTip = ProTip{
	Title: "Pro Tip for Petabyte Designs",
	Body: []Segment{
		{Text: "Start with a "},
		{Text: "multi-tier lifecycle", Strong: true},
		{Text: " per bucket/namespace: Hot → Warm → Archive. Wire your analytics engines to "},
		{Text: "query data in place", Strong: true},
		{Text: " to avoid costly copies. Add governance/catalog early to keep costs predictable as your lake grows."},
	},
	AsideTitle: "Need a Custom Analysis?",
	AsideBody:  "Share your regions, access patterns (hot %, monthly read GB), and analytics stack preferences for a concrete class/lifecycle plan with back-of-the-envelope cost modeling.",
}
