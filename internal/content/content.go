// Package content holds the static catalog rendered on the site: the owner
// profile, the experience timeline and skill groups.
package content

// ExperienceKind classifies a timeline entry
type ExperienceKind string

const (
	KindWork     ExperienceKind = "work"
	KindTeaching ExperienceKind = "teaching"
	KindResearch ExperienceKind = "research"
)

// Icon returns the emoji shown next to an entry
func (k ExperienceKind) Icon() string {
	switch k {
	case KindTeaching:
		return "🎓"
	case KindResearch:
		return "🔬"
	default:
		return "💼"
	}
}

// BorderClass returns the accent class of an entry
func (k ExperienceKind) BorderClass() string {
	switch k {
	case KindWork:
		return "border-blue-500"
	case KindTeaching:
		return "border-green-500"
	case KindResearch:
		return "border-purple-500"
	default:
		return "border-gray-500"
	}
}

// Experience is one entry of the timeline
type Experience struct {
	ID       string
	Company  string
	Position string
	Period   string
	Location string
	Bullets  []string
	Skills   []string
	Kind     ExperienceKind
}

// SkillGroup is a titled list of skills
type SkillGroup struct {
	Title  string
	Accent string
	Skills []string
}

// Profile describes the site owner
type Profile struct {
	Name      string
	Title     string
	Tagline   string
	Summary   string
	Email     string
	Location  string
	LinkedIn  string
	Expertise []string
}

// Site bundles everything the pages render
type Site struct {
	Profile    Profile
	Experience []Experience
	Skills     []SkillGroup
}

// Default returns the catalog with the owner name overridden when set
func Default(ownerName string) Site {
	p := profile
	if ownerName != "" {
		p.Name = ownerName
	}
	return Site{
		Profile:    p,
		Experience: experience,
		Skills:     skills,
	}
}

// ByKind returns the entries of one kind in timeline order
func (s Site) ByKind(kind ExperienceKind) []Experience {
	var out []Experience
	for _, e := range s.Experience {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

var profile = Profile{
	Name:    "Anirudh Hosur",
	Title:   "Senior Software Developer",
	Tagline: "Experienced Senior Software Developer with expertise in full-stack development, cloud technologies, and modern frameworks.",
	Summary: "Passionate Software Engineer with over 3 years of expertise in software development, cloud computing, and system design. " +
		"Proficient in Python, Java, and JavaScript, with a proven track record of building scalable, high-performance applications, " +
		"and secure APIs. Committed to advancing my career as a software architect, with a focus on delivering innovative multi-cloud solutions.",
	Email:     "anirudh.hosur@example.com",
	Location:  "Bangalore, India",
	LinkedIn:  "linkedin.com/in/anirudhhosur",
	Expertise: []string{"Full-Stack Development", "Cloud Technologies", "Modern Frameworks", "Database Design"},
}

var skills = []SkillGroup{
	{Title: "Languages", Accent: "bg-blue-500", Skills: []string{"Java", "Python", "TypeScript", "JavaScript", "SQL", "C", "C++"}},
	{Title: "Backend", Accent: "bg-green-500", Skills: []string{"Spring Boot", "Spring MVC", "Spring Data", "Spring Batch", "Node.js", "Nest.js", "FastAPI", "REST APIs", "Microservices"}},
	{Title: "Cloud & Data", Accent: "bg-purple-500", Skills: []string{"AWS (Lambda, Step Functions, S3, API Gateway, ECS/Fargate, Aurora PostgreSQL, SNS/SQS, CloudWatch)", "OpenShift", "Databricks", "Redshift"}},
	{Title: "Streaming & MQ", Accent: "bg-orange-500", Skills: []string{"Apache Kafka", "AWS SNS/SQS"}},
	{Title: "Databases", Accent: "bg-red-500", Skills: []string{"PostgreSQL", "Aurora", "OracleDB", "MySQL", "Redis", "Schema design", "Complex SQL", "Performance tuning"}},
	{Title: "DevOps", Accent: "bg-cyan-500", Skills: []string{"Docker", "Kubernetes/OpenShift", "AWS CDK", "GitHub Actions", "GitLab CI", "Jenkins", "Maven", "SonarCloud"}},
	{Title: "Practices", Accent: "bg-indigo-500", Skills: []string{"System Design", "OOP", "Design Patterns", "TDD", "Code Review", "CI/CD", "Production Monitoring (Splunk, Grafana)", "Agile/Scrum"}},
}
