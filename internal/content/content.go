// Package content holds the immutable data rendered on the portfolio page.
package content

// Icon names a glyph from the icon set shipped in the page header.
type Icon string

const (
	IconDatabase  Icon = "database"
	IconLineChart Icon = "line-chart"
	IconBrain     Icon = "brain"
	IconSparkles  Icon = "sparkles"
	IconGlobe     Icon = "globe-2"
	IconCode      Icon = "code"
	IconWorkflow  Icon = "workflow"
	IconTarget    Icon = "target"
	IconGithub    Icon = "github"
	IconLinkedin  Icon = "linkedin"
	IconMail      Icon = "mail"
	IconExternal  Icon = "external-link"
	IconClose     Icon = "x"
	IconHome      Icon = "home"
	IconAlert     Icon = "alert-circle"
)

type Link struct {
	Label string
	URL   string
	Icon  Icon
}

// Card is the shared shape of skill and value cards.
type Card struct {
	Icon        Icon
	Title       string
	Description string
}

type Testimonial struct {
	Company     string
	Feedback    string
	Achievement string
}

// Project describes one portfolio entry. Image is a file name under the
// images mount; an empty Image means the card has no preview.
type Project struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
	Date        string
	Image       string
	ImageAlt    string
}

// PreviewAlt is the alt text used for the project's image.
func (p Project) PreviewAlt() string {
	if p.ImageAlt != "" {
		return p.ImageAlt
	}
	return p.Title
}

type Callout struct {
	Heading   string
	Lead      string
	Highlight string
	Trailer   string
	Link      Link
}

type Profile struct {
	Name         string
	Headline     string
	Tagline      string
	Social       []Link
	Nav          []Link
	Skills       []Card
	Values       []Card
	Projects     []Project
	Testimonials []Testimonial
	Labs         Callout
	ContactBlurb string
	Footer       string
}

// Project looks up a project by slug.
func (p Profile) Project(slug string) (Project, bool) {
	for _, project := range p.Projects {
		if project.Slug == slug {
			return project, true
		}
	}
	return Project{}, false
}

const indicativeImage = "Above Image is indicative only but similar to the project"

// Default is the profile served by the site.
var Default = Profile{
	Name:     "Vatsal Raicha",
	Headline: "Data Scientist & ML Engineer",
	Tagline:  "Transforming data into actionable insights and building intelligent solutions",
	Social: []Link{
		{Label: "GitHub", URL: "https://github.com/vatsalraicha", Icon: IconGithub},
		{Label: "LinkedIn", URL: "https://linkedin.com/in/vatsalraicha", Icon: IconLinkedin},
	},
	Nav: []Link{
		{Label: "About", URL: "#about"},
		{Label: "Skills", URL: "#skills"},
		{Label: "Projects", URL: "#projects"},
		{Label: "Contact", URL: "#contact"},
	},
	Skills: []Card{
		{
			Icon:        IconDatabase,
			Title:       "Data Analysis",
			Description: "Expert in Python, SQL, and statistical analysis for deriving meaningful insights from complex datasets",
		},
		{
			Icon:        IconLineChart,
			Title:       "Data Visualization",
			Description: "Creating compelling visualizations using matplotlib, seaborn, and interactive dashboards",
		},
		{
			Icon:        IconBrain,
			Title:       "Machine Learning",
			Description: "Implementing ML models for classification, regression, and clustering using scikit-learn, PyTorch & TensorFlow",
		},
		{
			Icon:        IconSparkles,
			Title:       "Generative AI",
			Description: "Experienced in building custom GenAI solutions using LLMs, diffusion models, and vector databases for enterprise applications",
		},
		{
			Icon:        IconGlobe,
			Title:       "Domain Adaptability",
			Description: "Strong focus on understanding business domains deeply - from Enterprise systems to Publishing to modern Healthcare analytics, enabling the development of innovative and contextual solutions across industries",
		},
		{
			Icon:        IconCode,
			Title:       "Development",
			Description: "Building data pipelines and ML systems with Python, SQL, and cloud technologies like AWS, Azure",
		},
	},
	Values: []Card{
		{
			Icon:        IconWorkflow,
			Title:       "End-to-End Expertise",
			Description: "From data analysis to production deployment, I handle the complete lifecycle of ML projects. My experience spans from clinical trials to healthcare analytics, ensuring comprehensive solution delivery.",
		},
		{
			Icon:        IconSparkles,
			Title:       "Innovation & Adaptability",
			Description: "Consistently working with cutting-edge technologies like Diffusion Models and GenAI. Quick to adapt and implement new technologies that add value to your projects.",
		},
		{
			Icon:        IconTarget,
			Title:       "Business Impact Focus",
			Description: "Strong track record of delivering solutions that directly impact business outcomes - from optimizing clinical trials to revolutionizing analytics platforms and enhancing customer engagement.",
		},
	},
	Projects: []Project{
		{
			Slug:        "healthcare-rewards",
			Title:       "Healthcare Member Rewards Program Prediction",
			Description: "Developing a predictive model to identify potential rewards program members using healthcare data and smart device metrics. The project involves analyzing timeseries data and implementing clustering to categorize customer engagement levels for targeted outreach.",
			Tags:        []string{"Time Series Analysis", "Azure ML", "Databricks", "Spark", "SparkML", "MLFlow", "Snowflake", "Clustering", "Smart Device Data", "Healthcare Analytics"},
			Date:        "September 2024 - Present",
			Image:       "Rewards.png",
			ImageAlt:    indicativeImage,
		},
		{
			Slug:        "genai-analytics",
			Title:       "GenAI-Powered Analytics Platform",
			Description: "Developed an innovative GenAI application using PandasAI and OpenAI to replace traditional PowerBI functionality. The system processes natural language prompts to generate visualizations and insights, with responses stored in a Vector DB (Milvus) for efficient retrieval and reduced API calls.",
			Tags:        []string{"PandasAI", "OpenAI", "RAG", "LangChain", "Vector DB", "Milvus", "GenAI"},
			Date:        "July 2024 - October 2024",
			Image:       "Publishing.png",
			ImageAlt:    indicativeImage,
		},
		{
			Slug:        "synthetic-clinical-data",
			Title:       "Synthetic Clinical Trial Data Generation",
			Description: "Implemented a custom Diffusion model based on U-Net architecture for generating synthetic clinical trials data. The model, built with PyTorch and deployed on AWS, focuses on survival and adverse events data. Validated synthetic data quality through comprehensive statistical testing including Man-Whitney-U Test, Chi-Square test, and Kaplan-Meier analysis.",
			Tags:        []string{"PyTorch", "Diffusion Models", "U-Net", "AWS", "Clinical Trials", "Statistical Analysis"},
			Date:        "July 2024 - August 2024",
			Image:       "Pharma.png",
			ImageAlt:    indicativeImage,
		},
		{
			Slug:        "mainframe-anomaly-detection",
			Title:       "Early System Anomaly Detection for Mainframe",
			Description: "Led the development of an advanced ML-powered anomaly detection system analyzing 200+ KPIs. Engineered custom NLP word embeddings for Mainframe systems and implemented sophisticated time series analysis for predictive modeling. Built and deployed end-to-end ML pipelines using Vertex AI, managing model versions and performance monitoring at scale.",
			Tags:        []string{"Python", "TensorFlow", "NLP", "Machine Learning", "Jenkins", "Docker", "Time Series Analysis", "InfluxDB", "Grafana"},
			Date:        "August 2015 – April 2022",
			Image:       "AnomalyDetection.png",
			ImageAlt:    "Public Image by BMC Software for the product AMI Ops Insight, Copyright owned by BMC Software Inc.",
		},
	},
	Testimonials: []Testimonial{
		{
			Company:     "Healthcare Sector",
			Feedback:    "Successfully analyzed complex healthcare data and smart device metrics to drive membership growth through targeted engagement strategies.",
			Achievement: "Improved member conversion rates through data-driven insights",
		},
		{
			Company:     "Publishing Industry",
			Feedback:    "Revolutionized data analytics approach by implementing an innovative GenAI solution, significantly reducing dependency on traditional BI tools.",
			Achievement: "Streamlined analytics processes with AI automation",
		},
		{
			Company:     "Pharmaceutical Industry",
			Feedback:    "Delivered high-quality synthetic data generation solution for clinical trials, enabling faster and more cost-effective research processes.",
			Achievement: "Accelerated clinical trial data generation while maintaining statistical validity",
		},
		{
			Company:     "Cross-Industry Impact",
			Feedback:    "Consistent track record of delivering complex projects on time and exceeding client expectations across various industries.",
			Achievement: "100% client satisfaction rate",
		},
	},
	Labs: Callout{
		Heading:   "Beyond Data Science",
		Lead:      "While my professional focus is Data Science, I dedicate my downtime to building useful extensions for Chrome and Firefox.",
		Highlight: "Vatsal Labs",
		Trailer:   "is the home for these experiments. I believe in keeping tools accessible, so everything I build there is 100% free—and committed to staying that way.",
		Link:      Link{Label: "Visit Vatsal Labs", URL: "https://www.vatsallabs.com", Icon: IconExternal},
	},
	ContactBlurb: "I'm always interested in new opportunities and collaborations. Feel free to reach out!",
	Footer:       "© 2024 Vatsal Raicha. All rights reserved.",
}
