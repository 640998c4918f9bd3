package content

var experience = []Experience{
	{
		ID:       "ibm",
		Company:  "IBM Canada",
		Position: "Software Developer",
		Period:   "Jun 2024 - Present · 7 mos",
		Location: "Calgary, Alberta, Canada",
		Bullets: []string{
			"Working on enterprise software solutions using modern cloud technologies",
			"Developing scalable applications with focus on performance and reliability",
			"Collaborating with cross-functional teams in agile development environment",
		},
		Skills: []string{"Java", "Python", "Cloud Computing", "DevOps", "Agile Methodologies", "Microservices", "Docker", "Kubernetes"},
		Kind:   KindWork,
	},
	{
		ID:       "red-deer-polytechnic",
		Company:  "Red Deer Polytechnic",
		Position: "Teaching Assistant",
		Period:   "Sep 2023 - Apr 2024 · 8 mos",
		Location: "Red Deer, Alberta, Canada",
		Bullets: []string{
			"Assisted in computer science courses and laboratory sessions",
			"Supported students with programming assignments and projects",
			"Helped develop curriculum materials and grading rubrics",
		},
		Skills: []string{"Java", "Python", "Database Management", "Software Engineering", "Education", "Student Support"},
		Kind:   KindTeaching,
	},
	{
		ID:       "credwise",
		Company:  "Credwise",
		Position: "Software Engineer",
		Period:   "Mar 2023 - Aug 2023 · 6 mos",
		Location: "Remote",
		Bullets: []string{
			"Developed financial technology solutions for credit assessment",
			"Implemented machine learning models for risk evaluation",
			"Built RESTful APIs and integrated with third-party services",
		},
		Skills: []string{"Python", "Machine Learning", "REST APIs", "Data Science", "Financial Technology", "AWS", "Docker"},
		Kind:   KindWork,
	},
	{
		ID:       "outlier",
		Company:  "Outlier",
		Position: "Software Consultant",
		Period:   "Jan 2024 - May 2024 · 5 mos",
		Location: "Canada · Remote",
		Bullets: []string{
			"Specialized in prompt engineering and data analytics, performing data handling, cleaning, EDA, and generating AI prompts to meet specific client requirements using Java, Python, and Javascript.",
			"Conducted comprehensive code reviews for AI-generated solutions, validating full-stack, backend, and frontend tickets locally, and providing detailed feedback using Java, Python, MERN, SQL, Javascript, and Typescript.",
			"Optimized ETL processes and enhanced LLM accuracy through advanced prompt engineering and ML solutions, integrating GCP's BigQuery, VertexAI, Python, and SQL to improve AI response and data handling.",
		},
		Skills: []string{"Python", "Generative AI", "Java", "Prompt Engineering", "Large Language Models (LLM)"},
		Kind:   KindWork,
	},
	{
		ID:       "cloudops",
		Company:  "CloudOps",
		Position: "Cloud Developer Intern",
		Period:   "Aug 2023 - Dec 2023 · 5 mos",
		Location: "Montreal, Quebec, Canada · Remote",
		Bullets: []string{
			"Streamlined the CloudStack VM creation process by consolidating the creation pathways for bare-metal and standard VMs into a unified interface, enhancing user experience.",
			"Integrated VMware's compute sizing policies into VM plugin for accurate delta metric calculations (CPU, RAM, Storage) during VM/Vapp operations.",
			"Executed 100% test coverage in Groovy and Spock and led development in Spring boot and Java.",
			"Redesigned primary and secondary navigations for distinct user roles in Vue.js, resulting in enhanced UX.",
		},
		Skills: []string{"Coding Standards", "TypeScript", "Java", "React.js", "Spring Boot", "Agile Methodologies", "Vue.js", "Amazon Web Services (AWS)", "SQL", "JavaScript", "VMware", "Cloud Computing"},
		Kind:   KindWork,
	},
	{
		ID:       "dalhousie-ta",
		Company:  "Dalhousie University",
		Position: "Undergraduate Teaching Assistant and Marker",
		Period:   "Jan 2023 - Dec 2023 · 1 yr",
		Location: "Halifax, Nova Scotia, Canada",
		Bullets: []string{
			"Conducting lab sessions in Mysql queries, using join statements, and stored procedures, javascript, React, HTML, and CSS.",
			"Answering students' queries and doubts",
			"Providing career guidance to undergraduate students",
		},
		Skills: []string{"Java", "React.js", "Back-End Web Development", "SQL", "JavaScript", "Git", "Artificial Intelligence (AI)"},
		Kind:   KindTeaching,
	},
	{
		ID:       "dalhousie-gta",
		Company:  "Dalhousie University",
		Position: "Graduate Teaching Assistant and Marker",
		Period:   "Jan 2023 - Aug 2023 · 8 mos",
		Location: "Halifax, Nova Scotia, Canada",
		Bullets: []string{
			"Conducting lab sessions with CI/CD, Git, Spring boot, TDD, applying SOLID & Design patterns",
			"Collaborating with professors in updating and delivering course content",
			"Guiding students to develop an efficient final full-stack project",
		},
		Skills: []string{"Java", "React.js", "DevOps", "Agile Methodologies", "Amazon Web Services (AWS)", "SQL", "Git", "Spring Framework", "Cloud Computing"},
		Kind:   KindTeaching,
	},
	{
		ID:       "dalhousie-ra",
		Company:  "Dalhousie University",
		Position: "Research Assistant",
		Period:   "Nov 2022 - Dec 2022 · 2 mos",
		Location: "Halifax, Nova Scotia, Canada",
		Bullets: []string{
			"Developed python scripts that scrape data from Twitter based on time, keyword, search criteria, and users.",
			"This data is presented in research into ethics, inclusivity, and racial discrimination in a workplace setting.",
		},
		Skills: []string{"Twitter API", "Web Scraping", "Agile Methodologies", "Python", "Data Engineering", "Data Collection", "Data Mining", "Git", "Artificial Intelligence (AI)"},
		Kind:   KindResearch,
	},
	{
		ID:       "oracle",
		Company:  "Oracle Financial Services Software Limited",
		Position: "Associate Consultant",
		Period:   "Aug 2021 - Aug 2022 · 1 yr 1 mo",
		Location: "Bengaluru, Karnataka, India",
		Bullets: []string{
			"Built a microservice that generates excel files from business objects using spring boot, Java 11, and Apache POI libraries.",
			"Responsible for the entire MVC, its JUnit test cases, code coverage on sonar lit, bean validations, and exception handling.",
			"Agile methodology; Redhat Openshift for deployment.",
		},
		Skills: []string{"Coding Standards", "Java", "OpenShift", "Spring Boot", "DevOps", "Agile Methodologies", "Back-End Web Development", "SQL", "Kubernetes", "MySQL", "Microservices", "Git", "Spring Framework", "JUnit"},
		Kind:   KindWork,
	},
	{
		ID:       "quinbay",
		Company:  "Quinbay",
		Position: "Java Developer Intern",
		Period:   "Jan 2021 - Jun 2021 · 6 mos",
		Location: "Bengaluru, Karnataka, India",
		Bullets: []string{
			"Training on development of applications on spring boot (core Java) & android app development using Android studio.",
			"Backend API & microservices development, accessing dB, bug fixes, and enhancements using spring boot",
			"Grafana dashboard for data visualization",
			"E-commerce application from scratch (dB design, android app, web-app, and backend APIs)",
		},
		Skills: []string{"Java", "React.js", "Spring Boot", "DevOps", "Agile Methodologies", "Back-End Web Development", "Grafana", "SQL", "Microservices", "Spring Framework", "JUnit"},
		Kind:   KindWork,
	},
}
