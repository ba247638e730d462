package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// schoolKnowledge is the fixed kiosk knowledge base. Live reference data
// from the database is appended per request.
const schoolKnowledge = `
You are an AI assistant for Westmead International School (WIS), located in Batangas City, Philippines.

KEY INFORMATION ABOUT WESTMEAD INTERNATIONAL SCHOOL:

OVERVIEW:
- Westmead International School (WIS) is recognized by DepEd, TESDA, and CHED - the only international school with triple accreditation in the Philippines
- Founded in 2004 as Batangas Institute of Science and Technology
- Became Westmead International School in 2006
- Motto: "Learning Beyond Borders"
- Private stock corporation offering education from pre-elementary to college level
- Location: Comet St., Golden Country Homes Subdivision, Alangilan, Batangas City, Philippines (115 km south of Manila)
- Phone: +63 908 655 5521
- Email: iwestmead@gmail.com
- Website: westmead-is.edu.ph

COLLEGE PROGRAMS (A.Y. 2025-2026):

COLLEGE OF ENGINEERING (COE):
- BS Civil Engineering, BS Computer Engineering, BS Electrical Engineering
- BS Electronics Engineering, BS Industrial Engineering, BS Mechanical Engineering

COLLEGE OF ARTS & SCIENCES (CAS):
- AB Communication, AB English Language Studies, AB Political Science
- BS Mathematics, BS Psychology, BS Public Administration, BS Sociology

SCHOOL OF CRIMINOLOGY (SOC):
- BS Criminology

COLLEGE OF TOURISM & HOSPITALITY MANAGEMENT (CTHM):
- BS Hospitality Management, BS Tourism Management

COLLEGE OF TEACHER EDUCATION (CTE):
- Bachelor of Early Childhood Education
- Bachelor of Secondary Education (Majors: English, Mathematics, Science)

SCHOOL OF ECONOMICS, BUSINESS & ACCOUNTANCY (SEBA):
- AB Economics, BS Accountancy, BS Customs Administration
- BS Entrepreneurship, BS Real Estate Management
- BS Business Administration (Majors: Business Economics, Human Resource Management, Marketing Management)

COLLEGE OF INFORMATION TECHNOLOGY & COMPUTER STUDIES (CITCS):
- BS Information Technology, BS Computer Science

BASIC EDUCATION:
- Pre-elementary, Elementary, Junior & Senior High School

TECHNICAL-VOCATIONAL PROGRAMS:
- TESDA-accredited short-term courses

TUITION & FEES (A.Y. 2025-2026):
- Tuition fee: P1,500.00 per unit
- Miscellaneous fees: Varies based on scholarship granted
- Minimum down payment: P7,000 (for incoming freshmen, transferees, and returning students)
- School uniform cost: P2,500 - P3,500 (mandatory: polo/blouse, pants/skirt, PE uniform)
- Payment options: On-site, GCash, Bank transfer (Bank of Commerce, BDO)

SCHOLARSHIPS & FINANCIAL AID:
- Gawad Kabataan Scholarship (100% discount on misc fees, 50% discount on tuition - for incoming freshmen SHS/JHS graduates)
- Academic Scholarships (for outstanding performance/high grades)
- Athletic Scholarships (for qualified student-athletes)
- Student Assistantships (work-study programs)
- Government Scholarships (CHED, TES programs)
- Special Grants (siblings, WIS employees' dependents)
- Financial Discount (available for college transferees)

ENROLLMENT REQUIREMENTS:

For College Freshmen:
- Grade 12 Form 138 (Learner's Report Card), Form 137-A
- PSA Birth Certificate
- Certificate of Good Moral Character
- Recent 2x2 ID picture with WHITE background and NAME TAG
- Medical Results (Chest X-Ray, Urinalysis, Fecalysis, Blood Type)
- Certificate of Ranking (for Top 5 SHS Graduates of at least 200 ONLY)

For Transferees:
- Certificate of Eligibility to Transfer
- Transcript of Records / Copy of Grades
- PSA Birth Certificate
- Certificate of Good Moral Character
- Recent 2x2 ID picture with WHITE background and NAME TAG
- Medical Results (Chest X-Ray, Urinalysis, Fecalysis, Blood Type)

ENTRANCE EXAM & ENROLLMENT:
- Enrollment for 1st Semester A.Y. 2025-2026 starts: May 1, 2025
- Entrance exam: Required for BOARD PROGRAMS ONLY (Criminology, Psychology, Engineering)
- Non-board programs (BSBA, Tourism, IT): No entrance exam required
- Students evaluated based on Form 138 (for SHS/JHS graduates) or Transcript of Records (for transferees)

ONLINE CLASSES:
- No online classes available - all programs are face-to-face instruction only

INSTRUCTIONS:
- You may ONLY answer questions related to Westmead International School and general educational topics
- If a question is not related to school, education, or Westmead International School, politely redirect the user
- Be helpful, friendly, and professional
- Provide accurate, specific information based on the context above
- When discussing costs, always mention the current academic year (2025-2026)
- If you don't have specific information, suggest the user contact the school directly at +63 908 655 5521 or visit westmead-is.edu.ph
`

// tagalogDirective is appended when the kiosk is switched to Tagalog. It is
// advisory, the model may still fall back to English for technical terms.
const tagalogDirective = "\nLANGUAGE:\n- Answer in Tagalog. Keep program names and official document names in their original form.\n"

// briefingAssembler builds the generator's system context from the fixed
// knowledge base plus live reference data.
type briefingAssembler struct {
	referenceRepo domain.ReferenceRepository
	settingsRepo  domain.SettingsRepository
	maxEntries    int
	logger        *slog.Logger
}

// NewBriefingAssembler creates a ContextAssembler. maxEntries caps every
// reference category so the prompt stays bounded as the tables grow.
func NewBriefingAssembler(
	referenceRepo domain.ReferenceRepository,
	settingsRepo domain.SettingsRepository,
	maxEntries int,
	logger *slog.Logger,
) domain.ContextAssembler {
	return &briefingAssembler{
		referenceRepo: referenceRepo,
		settingsRepo:  settingsRepo,
		maxEntries:    maxEntries,
		logger:        logger,
	}
}

// Assemble composes the briefing. Reference categories that are empty or
// fail to load are omitted rather than failing the turn, the fixed
// knowledge base alone is enough to answer most questions.
func (b *briefingAssembler) Assemble(ctx context.Context, language string) (string, error) {
	var sb strings.Builder
	sb.WriteString(schoolKnowledge)

	b.writeSettings(ctx, &sb)
	b.writeProfessors(ctx, &sb)
	b.writeEvents(ctx, &sb)
	b.writeDepartments(ctx, &sb)
	b.writeFacilities(ctx, &sb)

	if language == entity.LanguageTagalog {
		sb.WriteString(tagalogDirective)
	}

	return sb.String(), nil
}

func (b *briefingAssembler) writeSettings(ctx context.Context, sb *strings.Builder) {
	settings, err := b.settingsRepo.Get(ctx)
	if err != nil {
		if !domain.IsNotFound(err) {
			b.logger.Warn("briefing: settings unavailable", "error", err)
		}
		return
	}
	sb.WriteString("\nCURRENT SCHOOL CONTACT DETAILS:\n")
	fmt.Fprintf(sb, "- School: %s\n", settings.SchoolName)
	if settings.SchoolMotto != "" {
		fmt.Fprintf(sb, "- Motto: %s\n", settings.SchoolMotto)
	}
	if settings.ContactEmail != "" {
		fmt.Fprintf(sb, "- Email: %s\n", settings.ContactEmail)
	}
	if settings.ContactPhone != "" {
		fmt.Fprintf(sb, "- Phone: %s\n", settings.ContactPhone)
	}
	if settings.Address != "" {
		fmt.Fprintf(sb, "- Address: %s\n", settings.Address)
	}
}

func (b *briefingAssembler) writeProfessors(ctx context.Context, sb *strings.Builder) {
	professors, err := b.referenceRepo.ListProfessors(ctx)
	if err != nil {
		b.logger.Warn("briefing: professors unavailable", "error", err)
		return
	}
	if len(professors) == 0 {
		return
	}
	if len(professors) > b.maxEntries {
		professors = professors[:b.maxEntries]
	}
	sb.WriteString("\nFACULTY DIRECTORY:\n")
	for _, p := range professors {
		fmt.Fprintf(sb, "- %s, %s, %s", p.Name, p.Position, p.Department)
		if p.Office != "" {
			fmt.Fprintf(sb, " (office: %s)", p.Office)
		}
		sb.WriteString("\n")
	}
}

func (b *briefingAssembler) writeEvents(ctx context.Context, sb *strings.Builder) {
	events, err := b.referenceRepo.UpcomingEvents(ctx, time.Now())
	if err != nil {
		b.logger.Warn("briefing: events unavailable", "error", err)
		return
	}
	if len(events) == 0 {
		return
	}
	if len(events) > b.maxEntries {
		events = events[:b.maxEntries]
	}
	sb.WriteString("\nUPCOMING EVENTS:\n")
	for _, e := range events {
		fmt.Fprintf(sb, "- %s on %s at %s", e.Title, e.EventDate.Format("January 2, 2006"), e.Location)
		if e.Description != "" {
			fmt.Fprintf(sb, ": %s", e.Description)
		}
		sb.WriteString("\n")
	}
}

func (b *briefingAssembler) writeDepartments(ctx context.Context, sb *strings.Builder) {
	departments, err := b.referenceRepo.ListDepartments(ctx)
	if err != nil {
		b.logger.Warn("briefing: departments unavailable", "error", err)
		return
	}
	if len(departments) == 0 {
		return
	}
	if len(departments) > b.maxEntries {
		departments = departments[:b.maxEntries]
	}
	sb.WriteString("\nDEPARTMENT DIRECTORY:\n")
	for _, d := range departments {
		fmt.Fprintf(sb, "- %s (%s)", d.Name, d.Code)
		if d.Building != "" {
			fmt.Fprintf(sb, ", %s", d.Building)
		}
		if d.ContactPerson != "" {
			fmt.Fprintf(sb, ", contact: %s", d.ContactPerson)
		}
		sb.WriteString("\n")
	}
}

func (b *briefingAssembler) writeFacilities(ctx context.Context, sb *strings.Builder) {
	facilities, err := b.referenceRepo.ListFacilities(ctx)
	if err != nil {
		b.logger.Warn("briefing: facilities unavailable", "error", err)
		return
	}
	if len(facilities) == 0 {
		return
	}
	if len(facilities) > b.maxEntries {
		facilities = facilities[:b.maxEntries]
	}
	sb.WriteString("\nCAMPUS FACILITIES:\n")
	for _, f := range facilities {
		fmt.Fprintf(sb, "- %s (%s), %s", f.Name, f.Type, f.Location)
		if f.Availability != "" {
			fmt.Fprintf(sb, ", %s", f.Availability)
		}
		sb.WriteString("\n")
	}
}
